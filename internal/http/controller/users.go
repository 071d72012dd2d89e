package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"userapi/internal/domain"
	"userapi/internal/http/dto"
)

func (h *Handler) ListUsers(c *gin.Context) {
	limit, ok := queryUint(c, "limit", domain.DefaultPageLimit)
	if !ok {
		return
	}
	offset, ok := queryUint(c, "offset", domain.DefaultPageOffset)
	if !ok {
		return
	}

	users, total, err := h.svc.List(c.Request.Context(), limit, offset)
	if err != nil {
		h.log.Error("list users failed", zap.Int("limit", limit), zap.Int("offset", offset), zap.Error(err))
		internalError(c, "failed to list users")
		return
	}
	c.JSON(http.StatusOK, dto.ListUsersResponse{
		Users:  users,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	})
}

func (h *Handler) GetUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	user, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		h.storeError(c, "get user failed", id, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handler) CreateUser(c *gin.Context) {
	var req dto.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, bindingMessage(err))
		return
	}
	created, err := h.svc.Create(c.Request.Context(), req.ToModel())
	if err != nil {
		h.log.Error("create user failed", zap.String("name", *req.Name), zap.Error(err))
		internalError(c, "failed to create user")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) UpdateUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, bindingMessage(err))
		return
	}
	updated, err := h.svc.Update(c.Request.Context(), id, req.ToModel())
	if err != nil {
		h.storeError(c, "update user failed", id, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		h.storeError(c, "delete user failed", id, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: fmt.Sprintf("User %d deleted successfully", id)})
}

func (h *Handler) storeError(c *gin.Context, msg string, id uint32, err error) {
	if errors.Is(err, domain.ErrUserNotFound) {
		notFound(c, fmt.Sprintf("user %d not found", id))
		return
	}
	h.log.Error(msg, zap.Uint32("id", id), zap.Error(err))
	internalError(c, msg)
}
