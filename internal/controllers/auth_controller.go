package controllers

import (
	"context"
	"errors"
	"time"

	"inkwell-backend/dto"
	"inkwell-backend/internal/repository"
	"inkwell-backend/internal/services"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	Users  *repository.UserRepository
	Secret string
}

// Signup godoc
// @Summary      Create an account
// @Description  Register with name, email and password; returns the user and a session token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.SignupRequest  true  "Signup payload"
// @Success      201   {object}  dto.AuthResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	u, err := services.Signup(ctx, h.Users, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailTaken):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: err.Error()})
		case errors.Is(err, services.ErrValidation):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "failed to create user"})
		}
	}

	token, err := services.IssueToken(h.Secret, u.ID.Hex(), time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "could not sign token"})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.AuthResponse{User: *u, AccessToken: token})
}

// Login godoc
// @Summary      Log in
// @Description  Exchange email and password for the user and a session token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.LoginRequest  true  "Login payload"
// @Success      200   {object}  dto.AuthResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	u, err := services.Login(ctx, h.Users, req)
	if err != nil {
		if errors.Is(err, services.ErrBadCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "invalid credentials"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "login failed"})
	}

	token, err := services.IssueToken(h.Secret, u.ID.Hex(), time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "could not sign token"})
	}

	return c.JSON(dto.AuthResponse{User: *u, AccessToken: token})
}
