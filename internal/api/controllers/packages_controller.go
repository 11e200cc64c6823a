package controllers

import (
	"github.com/gin-gonic/gin"
	"lankatrails/internal/models/request_models"
	"lankatrails/internal/services"
	"lankatrails/pkg/utils"
	"net/http"
)

type PackagesController struct {
	packageService services.PackageServiceInterface
}

func NewPackagesController(packageService services.PackageServiceInterface) *PackagesController {
	return &PackagesController{
		packageService: packageService,
	}
}

func (p *PackagesController) CreatePackage(c *gin.Context) {
	var req request_models.CreatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid package payload")
		return
	}

	id, err := p.packageService.CreatePackage(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"id": id}, "Package created successfully")
}

func (p *PackagesController) GetPackageById(c *gin.Context) {
	packageId := c.Param("id")
	if packageId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Package ID is required")
		return
	}

	pkg, err := p.packageService.GetPackageByID(c.Request.Context(), packageId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, pkg, "Package fetched successfully")
}

func (p *PackagesController) ListPackages(c *gin.Context) {
	page, pageSize, ok := parsePaging(c)
	if !ok {
		return
	}

	packages, err := p.packageService.ListPackages(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, packages, "Packages fetched successfully")
}
