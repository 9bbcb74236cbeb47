package leaverequest_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-shiftdesk/internal/approval"
	"go-shiftdesk/internal/leaverequest"
	leaverequesterrors "go-shiftdesk/internal/leaverequest/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func decodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakeLeaveService struct {
	createFn    func(ctx context.Context, storeID string, actor approval.Actor, req leaverequest.CreateLeaveRequest) (leaverequest.LeaveResponse, error)
	getAllFn    func(ctx context.Context, storeID string, actor approval.Actor) ([]leaverequest.LeaveResponse, error)
	getByIDFn   func(ctx context.Context, storeID, id string, actor approval.Actor) (leaverequest.LeaveResponse, error)
	approveFn   func(ctx context.Context, storeID string, actor approval.Actor, id string) (leaverequest.LeaveResponse, error)
	rejectFn    func(ctx context.Context, storeID string, actor approval.Actor, id, reason string) (leaverequest.LeaveResponse, error)
	cancelFn    func(ctx context.Context, storeID string, actor approval.Actor, id, reason string) (leaverequest.LeaveResponse, error)
	deleteFn    func(ctx context.Context, storeID string, actor approval.Actor, id string) error
	deleteAllFn func(ctx context.Context, storeID string, actor approval.Actor) error
}

func (f *fakeLeaveService) Create(ctx context.Context, storeID string, actor approval.Actor, req leaverequest.CreateLeaveRequest) (leaverequest.LeaveResponse, error) {
	return f.createFn(ctx, storeID, actor, req)
}
func (f *fakeLeaveService) GetAll(ctx context.Context, storeID string, actor approval.Actor) ([]leaverequest.LeaveResponse, error) {
	return f.getAllFn(ctx, storeID, actor)
}
func (f *fakeLeaveService) GetByID(ctx context.Context, storeID, id string, actor approval.Actor) (leaverequest.LeaveResponse, error) {
	return f.getByIDFn(ctx, storeID, id, actor)
}
func (f *fakeLeaveService) Approve(ctx context.Context, storeID string, actor approval.Actor, id string) (leaverequest.LeaveResponse, error) {
	return f.approveFn(ctx, storeID, actor, id)
}
func (f *fakeLeaveService) Reject(ctx context.Context, storeID string, actor approval.Actor, id, reason string) (leaverequest.LeaveResponse, error) {
	return f.rejectFn(ctx, storeID, actor, id, reason)
}
func (f *fakeLeaveService) Cancel(ctx context.Context, storeID string, actor approval.Actor, id, reason string) (leaverequest.LeaveResponse, error) {
	return f.cancelFn(ctx, storeID, actor, id, reason)
}
func (f *fakeLeaveService) Delete(ctx context.Context, storeID string, actor approval.Actor, id string) error {
	return f.deleteFn(ctx, storeID, actor, id)
}
func (f *fakeLeaveService) DeleteAll(ctx context.Context, storeID string, actor approval.Actor) error {
	return f.deleteAllFn(ctx, storeID, actor)
}

func TestLeaveHandler_Create(t *testing.T) {
	t.Run("success passes actor from context", func(t *testing.T) {
		storeID := uuid.New().String()
		actorID := uuid.New().String()

		svc := &fakeLeaveService{
			createFn: func(ctx context.Context, sid string, actor approval.Actor, req leaverequest.CreateLeaveRequest) (leaverequest.LeaveResponse, error) {
				assert.Equal(t, storeID, sid)
				assert.Equal(t, actorID, actor.ID)
				assert.Equal(t, approval.RoleEmployee, actor.Role)
				assert.Equal(t, "izin", req.LeaveType)
				return leaverequest.LeaveResponse{
					ID:         uuid.New().String(),
					StoreID:    sid,
					EmployeeID: actor.ID,
					LeaveType:  req.LeaveType,
					Status:     string(approval.StatusPending),
				}, nil
			},
		}

		h := leaverequest.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"leave_type":"izin","start_date":"2026-09-10","end_date":"2026-09-11","reason":"Family matter"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/leave-requests", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set("store_id", storeID)
		c.Set("employee_id", actorID)
		c.Set("role", "employee")

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
		var got leaverequest.LeaveResponse
		err := json.Unmarshal(env.Data, &got)
		assert.NoError(t, err)
		assert.Equal(t, string(approval.StatusPending), got.Status)
	})

	t.Run("negative validation error", func(t *testing.T) {
		h := leaverequest.NewHandler(&fakeLeaveService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/leave-requests", strings.NewReader(`{}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.NotNil(t, env.Error)
		assert.Equal(t, "INVALID_INPUT", env.Error.Code)
	})
}

func TestLeaveHandler_Approve(t *testing.T) {
	t.Run("negative conflict maps to 409", func(t *testing.T) {
		svc := &fakeLeaveService{
			approveFn: func(ctx context.Context, storeID string, actor approval.Actor, id string) (leaverequest.LeaveResponse, error) {
				return leaverequest.LeaveResponse{}, leaverequesterrors.ErrAlreadyProcessed
			},
		}

		h := leaverequest.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/leave-requests/x/approve", nil)
		c.Params = gin.Params{{Key: "id", Value: uuid.New().String()}}
		c.Set("store_id", uuid.New().String())
		c.Set("employee_id", uuid.New().String())
		c.Set("role", "cos")

		h.Approve(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.Equal(t, "CONFLICT", env.Error.Code)
		assert.Equal(t, "Request has already been processed", env.Error.Message)
	})

	t.Run("negative forbidden maps to 403", func(t *testing.T) {
		svc := &fakeLeaveService{
			approveFn: func(ctx context.Context, storeID string, actor approval.Actor, id string) (leaverequest.LeaveResponse, error) {
				return leaverequest.LeaveResponse{}, leaverequesterrors.ErrNotAllowedToDecide
			},
		}

		h := leaverequest.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/leave-requests/x/approve", nil)
		c.Params = gin.Params{{Key: "id", Value: uuid.New().String()}}
		c.Set("store_id", uuid.New().String())
		c.Set("employee_id", uuid.New().String())
		c.Set("role", "employee")

		h.Approve(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.Equal(t, "FORBIDDEN", env.Error.Code)
	})
}
