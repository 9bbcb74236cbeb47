package employee

type CreateEmployeeRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required"`
	Gender   string `json:"gender" binding:"required"`
	NIK      string `json:"nik"`
}

type UpdateEmployeeRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Role     string `json:"role" binding:"required"`
	Gender   string `json:"gender" binding:"required"`
	IsActive *bool  `json:"is_active"`
}

type EmployeeResponse struct {
	ID       string `json:"id"`
	StoreID  string `json:"store_id"`
	NIK      string `json:"nik"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Gender   string `json:"gender"`
	IsActive bool   `json:"is_active"`
}
