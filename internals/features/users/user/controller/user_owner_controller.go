package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/users/user/model"
	helper "schoolku_backend/internals/helpers"
)

var validate = validator.New()

/* =========================================================
   Controller — manajemen user lintas tenant (group /api/o)
========================================================= */

type UserOwnerController struct {
	DB *gorm.DB
}

func NewUserOwnerController(db *gorm.DB) *UserOwnerController {
	return &UserOwnerController{DB: db}
}

func getUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params(name)))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, name+" tidak valid")
	}
	return id, nil
}

// GET /api/o/users?q=&page=&per_page=
func (ctl *UserOwnerController) List(c *fiber.Ctx) error {
	pg := helper.ResolvePaging(c, 20, 100)
	q := ctl.DB.Model(&model.UserModel{})
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		like := "%" + search + "%"
		q = q.Where("user_name ILIKE ? OR email ILIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.UserModel
	if err := q.Order("created_at DESC").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.SuccessWithPagination(c, "Daftar user", rows,
		helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage))
}

// PATCH /api/o/users/:user_id/active — aktif/nonaktifkan akun
func (ctl *UserOwnerController) SetActive(c *fiber.Ctx) error {
	id, err := getUUIDParam(c, "user_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req struct {
		IsActive *bool `json:"is_active" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	res := ctl.DB.Model(&model.UserModel{}).
		Where("user_id = ?", id).
		Update("is_active", *req.IsActive)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "User tidak ditemukan")
	}
	return helper.Success(c, "Status akun diperbarui", fiber.Map{
		"user_id":   id,
		"is_active": *req.IsActive,
	})
}

/* =========================================================
   School admin assignment
========================================================= */

type assignSchoolAdminRequest struct {
	UserID   uuid.UUID `json:"user_id" validate:"required"`
	SchoolID uuid.UUID `json:"school_id" validate:"required"`
	Role     string    `json:"role" validate:"required,oneof=admin staff teacher"`
}

// POST /api/o/school-admins — tautkan user ke sekolah dengan role tenant
func (ctl *UserOwnerController) AssignSchoolAdmin(c *fiber.Ctx) error {
	var req assignSchoolAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var u model.UserModel
	if err := ctl.DB.Select("user_id").
		First(&u, "user_id = ?", req.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	link := &model.SchoolAdminModel{
		SchoolAdminUserID:   req.UserID,
		SchoolAdminSchoolID: req.SchoolID,
		SchoolAdminRole:     req.Role,
	}
	if err := ctl.DB.Create(link).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusConflict, "User sudah terdaftar di sekolah ini")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "User ditautkan ke sekolah", link)
}

// DELETE /api/o/school-admins/:school_admin_id
func (ctl *UserOwnerController) RevokeSchoolAdmin(c *fiber.Ctx) error {
	id, err := getUUIDParam(c, "school_admin_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	res := ctl.DB.Where("school_admin_id = ?", id).Delete(&model.SchoolAdminModel{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Keanggotaan tidak ditemukan")
	}
	return helper.Success(c, "Keanggotaan dicabut", fiber.Map{"school_admin_id": id})
}
