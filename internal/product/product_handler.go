package product

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"go-giftstore-api/internal/pkg/apperror"
	"go-giftstore-api/internal/pkg/response"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// parseListQuery reads the filter inputs. Multi-valued sets arrive
// comma-separated ("categories=Baby Shower,Corporate").
func parseListQuery(ctx *gin.Context) ListQuery {
	q := ListQuery{
		Search:   ctx.Query("search"),
		Category: ctx.Query("category"),
	}

	if raw := ctx.Query("minPrice"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			q.MinPrice = &v
		}
	}
	if raw := ctx.Query("maxPrice"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			q.MaxPrice = &v
		}
	}
	if raw := ctx.Query("categories"); raw != "" {
		q.Categories = strings.Split(raw, ",")
	}
	if raw := ctx.Query("subcategories"); raw != "" {
		q.Subcategories = strings.Split(raw, ",")
	}
	return q
}

func (h *Handler) List(ctx *gin.Context) {
	res, err := h.service.List(ctx, parseListQuery(ctx))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(ctx, http.StatusOK, "Products retrieved", res)
}

func (h *Handler) Detail(ctx *gin.Context) {
	p, err := h.service.Detail(ctx, ctx.Param("id"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(ctx, http.StatusOK, "Product retrieved", p)
}

func (h *Handler) Create(ctx *gin.Context) {
	var req CreateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid request body", err.Error())
		return
	}

	p, err := h.service.Create(ctx, req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(ctx, http.StatusCreated, "Product created", p)
}

func (h *Handler) Update(ctx *gin.Context) {
	var req UpdateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid request body", err.Error())
		return
	}

	p, err := h.service.Update(ctx, ctx.Param("id"), req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(ctx, http.StatusOK, "Product updated", p)
}

func (h *Handler) Delete(ctx *gin.Context) {
	if err := h.service.Delete(ctx, ctx.Param("id")); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(ctx, http.StatusOK, "Product deleted", nil)
}

func (h *Handler) UploadImage(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("image")
	if err != nil {
		response.Error(ctx, http.StatusBadRequest, apperror.CodeInvalidInput, "Image file is required", err.Error())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(ctx, http.StatusBadRequest, apperror.CodeInvalidInput, "Failed to read image file", err.Error())
		return
	}
	defer file.Close()

	url, err := h.service.UploadImage(ctx, file, fileHeader.Filename)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(ctx, http.StatusCreated, "Image uploaded", UploadImageResponse{URL: url})
}
