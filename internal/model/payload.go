package model

// Form payloads decoded by validation.Decode. Path parameters share the
// namespace of form fields, so ":id" lands in `form:"id"`.

// CreateCaregiverRequest is the form for a new caregiver user.
type CreateCaregiverRequest struct {
	User      `form:",squash"`
	Caregiver `form:",squash"`
}

func (r CreateCaregiverRequest) Role() Role {
	return CaregiverRole{Caregiver: r.Caregiver}
}

// CreateMemberRequest is the form for a new member user.
type CreateMemberRequest struct {
	User   `form:",squash"`
	Member `form:",squash"`
}

func (r CreateMemberRequest) Role() Role {
	return MemberRole{Member: r.Member}
}

type UpdateCaregiverRequest struct {
	ID             int64 `form:"id" validate:"required"`
	UserPatch      `form:",squash"`
	CaregiverPatch `form:",squash"`
}

type UpdateMemberRequest struct {
	ID          int64 `form:"id" validate:"required"`
	UserPatch   `form:",squash"`
	MemberPatch `form:",squash"`
}

// IDRequest carries a single ":id" path parameter.
type IDRequest struct {
	ID int64 `form:"id" validate:"required"`
}

type UpdateStatusRequest struct {
	ID     int64  `form:"id" validate:"required"`
	Status string `form:"status" validate:"required"`
}

// ApplicationKeyRequest carries the composite key of a job application.
type ApplicationKeyRequest struct {
	CaregiverID int64 `form:"caregiverId" validate:"required"`
	JobID       int64 `form:"jobId" validate:"required"`
}
