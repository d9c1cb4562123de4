package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/GenghisKhal/assignment3/internal/database"
	"github.com/GenghisKhal/assignment3/internal/model"
	"github.com/GenghisKhal/assignment3/internal/repository"
)

type UserHandler struct {
	Handler
	users *repository.UserRepository
}

func (h *UserHandler) ListUsers(c echo.Context, _ *EmptyRequest) ([]model.UserListing, error) {
	return h.users.ListUsersWithRole(c.Request().Context())
}

func (h *UserHandler) GetUser(c echo.Context, req *model.IDRequest) (*model.UserWithRole, error) {
	return h.users.GetUser(c.Request().Context(), req.ID)
}

func (h *UserHandler) CreateCaregiver(c echo.Context, req *model.CreateCaregiverRequest) (*model.UserWithRole, error) {
	return h.users.CreateUserWithRole(c.Request().Context(), req.User, req.Role())
}

func (h *UserHandler) CreateMember(c echo.Context, req *model.CreateMemberRequest) (*model.UserWithRole, error) {
	return h.users.CreateUserWithRole(c.Request().Context(), req.User, req.Role())
}

func (h *UserHandler) UpdateCaregiver(c echo.Context, req *model.UpdateCaregiverRequest) (*model.UserWithRole, error) {
	return h.users.UpdateUserAndRole(c.Request().Context(), req.ID, req.UserPatch, req.CaregiverPatch)
}

func (h *UserHandler) UpdateMember(c echo.Context, req *model.UpdateMemberRequest) (*model.UserWithRole, error) {
	return h.users.UpdateUserAndRole(c.Request().Context(), req.ID, req.UserPatch, req.MemberPatch)
}

// DeleteUser responds with the rows removed per table.
func (h *UserHandler) DeleteUser(c echo.Context, req *model.IDRequest) (database.Deleted, error) {
	return h.users.DeleteUserCascade(c.Request().Context(), req.ID)
}

func (h *UserHandler) GetAddress(c echo.Context, req *model.IDRequest) (*model.Address, error) {
	return h.users.GetAddress(c.Request().Context(), req.ID)
}

func (h *UserHandler) PutAddress(c echo.Context, req *model.Address) (*model.Address, error) {
	return h.users.UpsertAddress(c.Request().Context(), req.MemberUserID, *req)
}
