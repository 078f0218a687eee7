// File: handlers/calendar.go
package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"meetcure/calendar"
)

// MonthGridHandler serves the month grid the client renders: leading
// padding cells, then one cell per day. Month is 1-12.
func MonthGridHandler(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year in path"})
		return
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month in path, want 1-12"})
		return
	}

	cells := calendar.Grid(year, time.Month(month))
	prevYear, prevMonth := calendar.PrevMonth(year, time.Month(month))
	nextYear, nextMonth := calendar.NextMonth(year, time.Month(month))

	c.JSON(http.StatusOK, gin.H{
		"year":  year,
		"month": month,
		"cells": cells,
		"prev":  gin.H{"year": prevYear, "month": int(prevMonth)},
		"next":  gin.H{"year": nextYear, "month": int(nextMonth)},
	})
}
