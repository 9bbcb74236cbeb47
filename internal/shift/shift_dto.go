package shift

type CreateShiftRequest struct {
	Code              string `json:"code" binding:"required"`
	Name              string `json:"name" binding:"required"`
	StartTime         string `json:"start_time" binding:"required"`
	EndTime           string `json:"end_time" binding:"required"`
	GenderRestriction string `json:"gender_restriction"`
}

type UpdateShiftRequest struct {
	Name              string `json:"name" binding:"required"`
	StartTime         string `json:"start_time" binding:"required"`
	EndTime           string `json:"end_time" binding:"required"`
	GenderRestriction string `json:"gender_restriction"`
}

type ShiftResponse struct {
	ID                string `json:"id"`
	StoreID           string `json:"store_id"`
	Code              string `json:"code"`
	Name              string `json:"name"`
	StartTime         string `json:"start_time"`
	EndTime           string `json:"end_time"`
	GenderRestriction string `json:"gender_restriction,omitempty"`
}
