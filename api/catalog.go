package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mintusarker/shopping-site-server-code/internal/domain"
	"github.com/mintusarker/shopping-site-server-code/internal/repository"
)

// CatalogRoutes maps one segment collection onto its historical paths.
type CatalogRoutes struct {
	Base  string // create, list, delete-by-id
	Item  string // get-by-id
	Patch string // quantity update
}

var (
	NewArrivalRoutes = CatalogRoutes{Base: "/new-arrival", Item: "/newArrival/:id", Patch: "/product-newArrival"}
	TopSellingRoutes = CatalogRoutes{Base: "/top-selling", Item: "/topSelling/:id", Patch: "/product-topSell"}
)

// CatalogHandler serves one segment collection; the same handler is
// registered once per segment instead of duplicating the CRUD surface.
type CatalogHandler struct {
	items repository.CatalogRepository
}

func NewCatalogHandler(items repository.CatalogRepository) *CatalogHandler {
	return &CatalogHandler{items: items}
}

func (h *CatalogHandler) Register(r *gin.Engine, routes CatalogRoutes) {
	r.POST(routes.Base, h.create)
	r.GET(routes.Base, h.list)
	r.GET(routes.Item, h.get)
	r.DELETE(routes.Base+"/:id", h.delete)
	r.PATCH(routes.Patch, h.setQuantity)
}

func (h *CatalogHandler) create(c *gin.Context) {
	var item domain.CatalogItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	res, err := h.items.Create(c.Request.Context(), item)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *CatalogHandler) list(c *gin.Context) {
	items, err := h.items.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *CatalogHandler) get(c *gin.Context) {
	id, err := domain.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	item, err := h.items.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *CatalogHandler) setQuantity(c *gin.Context) {
	var req quantityUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	id, err := domain.ParseID(req.ID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	res, err := h.items.SetQuantity(c.Request.Context(), id, req.Quantity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *CatalogHandler) delete(c *gin.Context) {
	id, err := domain.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	res, err := h.items.Delete(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}
