package web

import (
	"net/http"
	"time"
	"tripbook/db"
	"tripbook/handlers"
	"tripbook/memoir"
	"tripbook/models"
	"tripbook/utils"

	"github.com/gin-gonic/gin"
)

// MemoirView is the public, read-only share page. It never creates records,
// so a shared trip without a saved memoir is simply not found.
func MemoirView(c *gin.Context) {
	token := c.Param("token")
	rows, err := db.Instance.
		Table("memoir_shares").
		Select("memoir_shares.trip_id, users.name").
		Where("token = ? and (expires_at=0 or expires_at > ?)", token, time.Now().Unix()).
		Joins("join users on memoir_shares.user_id = users.id").
		Rows()
	if err != nil {
		c.JSON(http.StatusInternalServerError, handlers.DBError1Response)
		return
	}
	var tripID uint64
	var userName string
	if rows.Next() {
		if err = rows.Scan(&tripID, &userName); err != nil {
			c.JSON(http.StatusInternalServerError, handlers.DBError2Response)
			rows.Close()
			return
		}
	}
	rows.Close()
	if tripID == 0 {
		c.JSON(http.StatusNotFound, handlers.NotFoundResponse)
		return
	}
	trip := models.Trip{}
	if err = db.Instance.First(&trip, tripID).Error; err != nil {
		c.JSON(http.StatusNotFound, handlers.NotFoundResponse)
		return
	}
	memoirs := memoir.GormMemoirStore{}
	record, err := memoirs.ForTrip(tripID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, handlers.DBError3Response)
		return
	}
	if record == nil {
		c.JSON(http.StatusNotFound, handlers.NotFoundResponse)
		return
	}
	items, err := memoir.GormItemStore{}.ForTrip(tripID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, handlers.DBError3Response)
		return
	}
	photos := record.Photos
	if len(photos) == 0 {
		photos = memoir.CollectPhotos(items, memoir.GormItemStore{})
	}
	journals := memoir.BuildJournals(trip.StartDate, memoir.TripDayCount(&trip), items)
	json := gin.H{
		"ownerName": "@" + userName,
		"title":     record.Title,
		"subtitle":  utils.GetDatesString(trip.StartDate, trip.EndDate),
		"journals":  journals,
		"photos":    photos,
	}
	if c.Query("format") == "json" {
		c.JSON(http.StatusOK, json)
		return
	}
	c.HTML(http.StatusOK, "memoir_view.tmpl", json)
}

func DisallowRobots(c *gin.Context) {
	c.String(http.StatusOK, "User-agent: *\nDisallow: /\n")
}
