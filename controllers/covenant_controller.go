package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"foundryos/backend/models"
)

func ListCovenants() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"covenants": models.AllCovenants()})
	}
}

func GetCovenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		cov, err := models.LookupCovenant(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "covenant not found"})
			return
		}
		c.JSON(http.StatusOK, cov)
	}
}

func CovenantGuidance(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		g, err := models.DailyGuidance(models.CovenantKind(c.Param("id")), d.now())
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "covenant not found"})
			return
		}
		c.JSON(http.StatusOK, g)
	}
}

func Health() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
