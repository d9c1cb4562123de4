package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/GenghisKhal/assignment3/internal/database"
	"github.com/GenghisKhal/assignment3/internal/errs"
	"github.com/GenghisKhal/assignment3/internal/model"
	"github.com/GenghisKhal/assignment3/internal/schema"
	"github.com/GenghisKhal/assignment3/internal/validation"
)

const (
	userColumns      = "user_id, email, given_name, surname, city, phone_number, profile_description, password"
	caregiverColumns = "caregiver_user_id, photo, gender, caregiving_type, hourly_rate"
	memberColumns    = "member_user_id, house_rules, dependent_description"
	addressColumns   = "member_user_id, house_number, street, town"
)

type UserRepository struct {
	base
}

var errRoleRequired = errs.NewBadRequestError("A user must be created as a caregiver or a member", true, nil,
	[]errs.FieldError{{Field: "role", Error: "is required"}})

// CreateUserWithRole inserts the user and its caregiver or member row in one
// transaction. A failing role insert leaves no user row behind.
func (r *UserRepository) CreateUserWithRole(ctx context.Context, user model.User, role model.Role) (*model.UserWithRole, error) {
	if err := validation.Struct(&user); err != nil {
		return nil, err
	}

	switch role := role.(type) {
	case model.CaregiverRole:
		if err := validation.Struct(&role.Caregiver); err != nil {
			return nil, err
		}
	case model.MemberRole:
		if err := validation.Struct(&role.Member); err != nil {
			return nil, err
		}
	default:
		return nil, errRoleRequired
	}

	var created model.UserWithRole
	err := r.withTx(ctx, "create_user_with_role", func(tx pgx.Tx) error {
		stored, err := insertUser(ctx, tx, user)
		if err != nil {
			return err
		}

		created.User = *stored
		created.Role, err = insertRole(ctx, tx, stored.UserID, role)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func insertUser(ctx context.Context, tx database.DBTX, u model.User) (*model.User, error) {
	if err := reserveID(ctx, tx, schema.Users, "user_id", u.UserID); err != nil {
		return nil, err
	}

	cols, args := withOptionalID("user_id",
		u.UserID,
		[]string{"email", "given_name", "surname", "city", "phone_number", "profile_description", "password"},
		[]any{u.Email, u.GivenName, u.Surname, u.City, u.PhoneNumber, u.ProfileDescription, u.Password},
	)
	return queryOne[model.User](ctx, tx, schema.Users, insertSQL(schema.Users, cols, userColumns), args...)
}

func insertRole(ctx context.Context, tx database.DBTX, userID int64, role model.Role) (model.Role, error) {
	switch role := role.(type) {
	case model.CaregiverRole:
		c := role.Caregiver
		stored, err := queryOne[model.Caregiver](ctx, tx, schema.Caregivers,
			insertSQL(schema.Caregivers,
				[]string{"caregiver_user_id", "photo", "gender", "caregiving_type", "hourly_rate"},
				caregiverColumns),
			userID, c.Photo, c.Gender, c.CaregivingType, c.HourlyRate,
		)
		if err != nil {
			return nil, err
		}
		return model.CaregiverRole{Caregiver: *stored}, nil

	case model.MemberRole:
		m := role.Member
		stored, err := queryOne[model.Member](ctx, tx, schema.Members,
			insertSQL(schema.Members,
				[]string{"member_user_id", "house_rules", "dependent_description"},
				memberColumns),
			userID, m.HouseRules, m.DependentDescription,
		)
		if err != nil {
			return nil, err
		}
		return model.MemberRole{Member: *stored}, nil
	}
	return nil, errRoleRequired
}

// UpdateUserAndRole locks the user and the role row named by rolePatch,
// applies both patches and writes them back. rolePatch must name the role;
// a missing user or role row is a NotFound error.
func (r *UserRepository) UpdateUserAndRole(ctx context.Context, userID int64, patch model.UserPatch, rolePatch model.RolePatch) (*model.UserWithRole, error) {
	if rolePatch == nil {
		return nil, errRoleRequired
	}

	var updated model.UserWithRole
	err := r.withTx(ctx, "update_user_and_role", func(tx pgx.Tx) error {
		user, err := queryOne[model.User](ctx, tx, schema.Users,
			`SELECT `+userColumns+` FROM users WHERE user_id = $1 FOR UPDATE`, userID)
		if err != nil {
			return err
		}

		var role model.Role
		switch p := rolePatch.(type) {
		case model.CaregiverPatch:
			role, err = updateCaregiver(ctx, tx, userID, p)
		case model.MemberPatch:
			role, err = updateMember(ctx, tx, userID, p)
		default:
			err = errRoleRequired
		}
		if err != nil {
			return err
		}

		patch.Apply(user)
		if err := validation.Struct(user); err != nil {
			return err
		}

		_, err = tx.Exec(ctx, `
			UPDATE users
			SET email = $2, given_name = $3, surname = $4, city = $5,
				phone_number = $6, profile_description = $7, password = $8
			WHERE user_id = $1`,
			user.UserID, user.Email, user.GivenName, user.Surname, user.City,
			user.PhoneNumber, user.ProfileDescription, user.Password,
		)
		if err != nil {
			return err
		}

		updated = model.UserWithRole{User: *user, Role: role}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func updateCaregiver(ctx context.Context, tx database.DBTX, userID int64, p model.CaregiverPatch) (model.Role, error) {
	c, err := queryOne[model.Caregiver](ctx, tx, schema.Caregivers,
		`SELECT `+caregiverColumns+` FROM caregivers WHERE caregiver_user_id = $1 FOR UPDATE`, userID)
	if err != nil {
		return nil, err
	}

	p.Apply(c)
	if err := validation.Struct(c); err != nil {
		return nil, err
	}

	_, err = tx.Exec(ctx, `
		UPDATE caregivers
		SET photo = $2, gender = $3, caregiving_type = $4, hourly_rate = $5
		WHERE caregiver_user_id = $1`,
		userID, c.Photo, c.Gender, c.CaregivingType, c.HourlyRate,
	)
	if err != nil {
		return nil, err
	}
	return model.CaregiverRole{Caregiver: *c}, nil
}

func updateMember(ctx context.Context, tx database.DBTX, userID int64, p model.MemberPatch) (model.Role, error) {
	m, err := queryOne[model.Member](ctx, tx, schema.Members,
		`SELECT `+memberColumns+` FROM members WHERE member_user_id = $1 FOR UPDATE`, userID)
	if err != nil {
		return nil, err
	}

	p.Apply(m)

	_, err = tx.Exec(ctx, `
		UPDATE members
		SET house_rules = $2, dependent_description = $3
		WHERE member_user_id = $1`,
		userID, m.HouseRules, m.DependentDescription,
	)
	if err != nil {
		return nil, err
	}
	return model.MemberRole{Member: *m}, nil
}

// loadRole resolves the role of a user from its caregiver and member rows.
func loadRole(ctx context.Context, db database.DBTX, userID int64) (model.Role, error) {
	caregiver, err := queryOne[model.Caregiver](ctx, db, schema.Caregivers,
		`SELECT `+caregiverColumns+` FROM caregivers WHERE caregiver_user_id = $1`, userID)
	if err != nil && !errors.Is(err, errs.ErrNotFound) {
		return nil, err
	}

	member, err := queryOne[model.Member](ctx, db, schema.Members,
		`SELECT `+memberColumns+` FROM members WHERE member_user_id = $1`, userID)
	if err != nil && !errors.Is(err, errs.ErrNotFound) {
		return nil, err
	}

	return model.ResolveRole(caregiver, member), nil
}

// GetUser loads a user and resolves its role.
func (r *UserRepository) GetUser(ctx context.Context, userID int64) (*model.UserWithRole, error) {
	user, err := queryOne[model.User](ctx, r.pool, schema.Users,
		`SELECT `+userColumns+` FROM users WHERE user_id = $1`, userID)
	if err != nil {
		return nil, err
	}

	role, err := loadRole(ctx, r.pool, userID)
	if err != nil {
		return nil, err
	}
	return &model.UserWithRole{User: *user, Role: role}, nil
}

// ListUsersWithRole lists every user labelled "Caregiver" when a caregiver row
// exists and "Member/User" otherwise, ordered by id.
func (r *UserRepository) ListUsersWithRole(ctx context.Context) ([]model.UserListing, error) {
	return queryAll[model.UserListing](ctx, r.pool, `
		SELECT
			u.user_id, u.email, u.given_name, u.surname, u.city,
			u.phone_number, u.profile_description, u.password,
			CASE WHEN c.caregiver_user_id IS NOT NULL THEN $1::text ELSE $2::text END AS role
		FROM users u
		LEFT JOIN caregivers c ON c.caregiver_user_id = u.user_id
		ORDER BY u.user_id`,
		model.LabelCaregiver, model.LabelMember,
	)
}

// DeleteUserCascade removes the user and every row that depends on it:
// caregiver and member rows, the member's address, jobs and the applications
// on them, and appointments and applications on either side. Deleting a
// missing user removes nothing and succeeds.
func (r *UserRepository) DeleteUserCascade(ctx context.Context, userID int64) (database.Deleted, error) {
	var deleted database.Deleted
	err := r.withTx(ctx, "delete_user_cascade", func(tx pgx.Tx) error {
		var err error
		deleted, err = database.Cascade(ctx, tx, schema.Users, []int64{userID})
		return err
	})
	if err != nil {
		return nil, err
	}

	r.log(ctx).Info().
		Int64("user_id", userID).
		Int64("rows", deleted.Total()).
		Msg("user deleted")
	return deleted, nil
}

// UpsertAddress inserts the member's address or replaces the existing one.
func (r *UserRepository) UpsertAddress(ctx context.Context, memberUserID int64, addr model.Address) (*model.Address, error) {
	addr.MemberUserID = memberUserID

	var stored *model.Address
	err := r.withTx(ctx, "upsert_address", func(tx pgx.Tx) error {
		var exists int
		err := tx.QueryRow(ctx,
			`SELECT 1 FROM members WHERE member_user_id = $1 FOR SHARE`, memberUserID).Scan(&exists)
		if err != nil {
			return notFound(schema.Members, err)
		}

		stored, err = queryOne[model.Address](ctx, tx, schema.Addresses, `
			INSERT INTO addresses (member_user_id, house_number, street, town)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (member_user_id) DO UPDATE
			SET house_number = EXCLUDED.house_number,
				street = EXCLUDED.street,
				town = EXCLUDED.town
			RETURNING `+addressColumns,
			addr.MemberUserID, addr.HouseNumber, addr.Street, addr.Town,
		)
		return err
	})
	if err != nil {
		return nil, err
	}
	return stored, nil
}

// GetAddress loads the address of a member.
func (r *UserRepository) GetAddress(ctx context.Context, memberUserID int64) (*model.Address, error) {
	return queryOne[model.Address](ctx, r.pool, schema.Addresses,
		`SELECT `+addressColumns+` FROM addresses WHERE member_user_id = $1`, memberUserID)
}
