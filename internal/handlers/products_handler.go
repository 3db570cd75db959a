package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"storefront-assistant-service/internal/catalog"
	"storefront-assistant-service/internal/models"
	"storefront-assistant-service/internal/search"
)

type ProductsHandler struct {
	catalog *catalog.Service
	engine  *search.Engine
}

func NewProductsHandler(cat *catalog.Service, engine *search.Engine) *ProductsHandler {
	return &ProductsHandler{catalog: cat, engine: engine}
}

// GetProducts returns the flattened catalog with pagination
// @Summary List products
// @Description Get the flattened product catalog with pagination
// @Tags Products
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} models.ProductListResponse
// @Router /products [get]
func (h *ProductsHandler) GetProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	all := h.catalog.AllProducts()
	total := int64(len(all))

	start := (page - 1) * limit
	if start > len(all) {
		start = len(all)
	}
	end := start + limit
	if end > len(all) {
		end = len(all)
	}

	pageItems := make([]models.Product, end-start)
	copy(pageItems, all[start:end])

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	c.JSON(http.StatusOK, models.ProductListResponse{
		Success: true,
		Data:    pageItems,
		Pagination: &models.PaginationInfo{
			Page:        page,
			Limit:       limit,
			Total:       total,
			TotalPages:  totalPages,
			HasNext:     page < totalPages,
			HasPrevious: page > 1,
		},
	})
}

// GetProduct returns a single product by ID
// @Summary Get product
// @Description Get a single product by its catalog ID
// @Tags Products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ProductResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (h *ProductsHandler) GetProduct(c *gin.Context) {
	product := h.catalog.ProductByID(c.Param("id"))
	if product == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "NOT_FOUND",
				Message: "Product not found",
			},
		})
		return
	}

	c.JSON(http.StatusOK, models.ProductResponse{
		Success: true,
		Data:    product,
	})
}

// SearchProducts filters the catalog by structured criteria
// @Summary Search products
// @Description Filter the catalog by gender, category, price bounds and free text
// @Tags Products
// @Accept json
// @Produce json
// @Param criteria body models.FilterCriteria true "Filter criteria"
// @Success 200 {object} models.ProductListResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /products/search [post]
func (h *ProductsHandler) SearchProducts(c *gin.Context) {
	var criteria models.FilterCriteria
	if err := c.ShouldBindJSON(&criteria); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "VALIDATION_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	results := h.engine.Search(criteria)
	c.JSON(http.StatusOK, models.ProductListResponse{
		Success: true,
		Data:    results,
	})
}

// GetCategories returns the distinct catalog categories
// @Summary Get categories
// @Description Get the distinct categories of the flattened catalog
// @Tags Categories
// @Accept json
// @Produce json
// @Success 200 {object} models.CategoryListResponse
// @Router /categories [get]
func (h *ProductsHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, models.CategoryListResponse{
		Success: true,
		Data:    h.catalog.Categories(),
	})
}

// ExportProducts downloads the catalog as an Excel workbook
// @Summary Export products
// @Description Export the flattened catalog (optionally filtered) as XLSX
// @Tags Products
// @Accept json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param criteria body models.FilterCriteria false "Optional filter criteria"
// @Success 200 {file} binary
// @Router /products/export [post]
func (h *ProductsHandler) ExportProducts(c *gin.Context) {
	var criteria models.FilterCriteria
	// An empty or missing body exports the whole catalog
	_ = c.ShouldBindJSON(&criteria)

	products := h.engine.Search(criteria)

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Products"
	f.SetSheetName("Sheet1", sheetName)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})

	headers := []string{"ID", "Name", "Description", "Price", "Gender", "Product Type", "Category", "Brand", "Rating", "Reviews"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)

		colName, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, colName, colName, 20)
	}

	for row, p := range products {
		values := []interface{}{p.ID, p.Name, p.Description, p.Price, string(p.Gender), p.ProductType, p.Category, p.Brand, p.Rating, p.Reviews}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=products_export_%d_items.xlsx", len(products)))

	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "EXPORT_FAILED",
				Message: "Failed to write export file",
				Details: &models.JSON{"error": err.Error()},
			},
		})
	}
}
