package handlers

import (
	"net/http"
	"tripbook/db"
	"tripbook/models"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Error string `json:"error"`
}

var (
	// Predefined errors
	OKResponse        = Response{}
	NopeResponse      = Response{"nope"}
	NotFoundResponse  = Response{"not found"}
	DBError1Response  = Response{"DB Error 1"}
	DBError2Response  = Response{"DB Error 2"}
	DBError3Response  = Response{"DB Error 3"}
	NoStorageResponse = Response{"no storage configured"}
)

// loadTrip fetches a trip and writes the error response itself when the
// trip is missing. A missing trip is fatal for every trip-scoped view.
func loadTrip(c *gin.Context, tripID uint64) *models.Trip {
	trip := models.Trip{}
	result := db.Instance.First(&trip, tripID)
	if result.Error != nil {
		c.JSON(http.StatusNotFound, NotFoundResponse)
		return nil
	}
	return &trip
}

// loadTripForEdit additionally requires owner or editor role
func loadTripForEdit(c *gin.Context, tripID, userID uint64) *models.Trip {
	trip := loadTrip(c, tripID)
	if trip == nil {
		return nil
	}
	if !trip.CanEdit(userID) {
		c.JSON(http.StatusUnauthorized, NopeResponse)
		return nil
	}
	return trip
}

// loadTripForView requires any role on the trip
func loadTripForView(c *gin.Context, tripID, userID uint64) *models.Trip {
	trip := loadTrip(c, tripID)
	if trip == nil {
		return nil
	}
	if !trip.CanView(userID) {
		c.JSON(http.StatusUnauthorized, NopeResponse)
		return nil
	}
	return trip
}
