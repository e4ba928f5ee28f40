package server

import (
	"io"
	"strconv"
	"strings"

	"barkbook/internal/models"
	"barkbook/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateDog handles POST /api/dogs
// @Summary Create dog profile
// @Description Create the caller's dog profile (one per user)
// @Tags dogs
// @Accept json
// @Produce json
// @Param request body object{name=string,breed=string,age=int,avatar=string} true "Dog profile"
// @Success 201 {object} models.Dog
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /dogs [post]
func (s *Server) CreateDog(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		Name   string `json:"name"`
		Breed  string `json:"breed"`
		Age    int    `json:"age"`
		Avatar string `json:"avatar"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	dog, err := s.dogService.CreateDog(c.Context(), service.CreateDogInput{
		OwnerID: userID,
		Name:    req.Name,
		Breed:   req.Breed,
		Age:     req.Age,
		Avatar:  req.Avatar,
	})
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(dog)
}

// GetMyDog handles GET /api/dogs/me
// @Summary Get my dog profile
// @Tags dogs
// @Produce json
// @Success 200 {object} models.Dog
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /dogs/me [get]
func (s *Server) GetMyDog(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	dog, err := s.dogService.GetMyDog(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(dog)
}

// UpdateMyDog handles PUT /api/dogs/me
// @Summary Update my dog profile
// @Description Partially update the caller's dog profile. Accepts JSON or
// @Description multipart/form-data; an avatar file replaces the current
// @Description avatar and an empty avatar field clears it. Absent fields are
// @Description left untouched.
// @Tags dogs
// @Accept json
// @Accept multipart/form-data
// @Produce json
// @Success 200 {object} models.Dog
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /dogs/me [put]
func (s *Server) UpdateMyDog(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var patch service.DogPatch
	var err error
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		patch, err = parseDogPatchForm(c)
	} else {
		patch, err = parseDogPatchJSON(c)
	}
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}

	dog, svcErr := s.dogService.UpdateMyDog(c.Context(), userID, patch)
	if svcErr != nil {
		return models.RespondWithError(c, models.StatusForError(svcErr), svcErr)
	}

	return c.JSON(dog)
}

// parseDogPatchJSON builds a patch from a JSON body. Pointer fields keep
// absent and zero-valued fields distinguishable.
func parseDogPatchJSON(c *fiber.Ctx) (service.DogPatch, error) {
	var req struct {
		Name   *string `json:"name"`
		Breed  *string `json:"breed"`
		Age    *int    `json:"age"`
		Avatar *string `json:"avatar"`
	}
	if err := c.BodyParser(&req); err != nil {
		return service.DogPatch{}, fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	patch := service.DogPatch{
		Name:  req.Name,
		Breed: req.Breed,
		Age:   req.Age,
	}
	// JSON cannot carry the image bytes; only clearing is supported here.
	if req.Avatar != nil && *req.Avatar == "" {
		patch.ClearAvatar = true
	}
	return patch, nil
}

// parseDogPatchForm builds a patch from a multipart form. Presence is keyed
// off the form, not off zero values, so "age=0" is a real update.
func parseDogPatchForm(c *fiber.Ctx) (service.DogPatch, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return service.DogPatch{}, fiber.NewError(fiber.StatusBadRequest, "Invalid form body")
	}

	var patch service.DogPatch

	if vals, ok := form.Value["name"]; ok && len(vals) > 0 {
		patch.Name = &vals[0]
	}
	if vals, ok := form.Value["breed"]; ok && len(vals) > 0 {
		patch.Breed = &vals[0]
	}
	if vals, ok := form.Value["age"]; ok && len(vals) > 0 {
		age, convErr := strconv.Atoi(vals[0])
		if convErr != nil {
			return service.DogPatch{}, fiber.NewError(fiber.StatusBadRequest, "age must be a number")
		}
		patch.Age = &age
	}

	if files, ok := form.File["avatar"]; ok && len(files) > 0 {
		f, openErr := files[0].Open()
		if openErr != nil {
			return service.DogPatch{}, fiber.NewError(fiber.StatusBadRequest, "Unreadable avatar upload")
		}
		defer func() { _ = f.Close() }()

		content, readErr := io.ReadAll(f)
		if readErr != nil {
			return service.DogPatch{}, fiber.NewError(fiber.StatusBadRequest, "Unreadable avatar upload")
		}
		patch.Avatar = content
	} else if vals, ok := form.Value["avatar"]; ok && len(vals) > 0 && vals[0] == "" {
		patch.ClearAvatar = true
	}

	return patch, nil
}
