package controllers

import (
	"courseadmin/config"
	"courseadmin/database"
	"courseadmin/middleware"
	"courseadmin/models"
	"courseadmin/utils"

	"github.com/gofiber/fiber/v2"
)

// SubmitFeedback stores one satisfaction rating with an optional comment.
func SubmitFeedback(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedFeedback").(*struct {
		Rating  int    `json:"rating" validate:"required,min=1,max=5"`
		Comment string `json:"comment" validate:"max=2000"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	feedback := models.Feedback{
		Rating:  reqData.Rating,
		Comment: reqData.Comment,
	}

	if err := database.Database.Db.Create(&feedback).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit feedback!", nil)
	}

	if feedback.Rating <= config.AppConfig.LowRatingThreshold {
		go utils.NotifyLowRating(feedback.Rating, feedback.Comment)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Feedback submitted successfully!", feedback)
}

// AdminListFeedback returns feedback entries, newest first, paginated.
func AdminListFeedback(c *fiber.Ctx) error {
	reqData, _ := c.Locals("validatedFeedbackList").(*struct {
		Page  *int `json:"page"`
		Limit *int `json:"limit"`
	})

	page := 1
	limit := 10
	if reqData != nil && reqData.Page != nil && *reqData.Page > 0 {
		page = *reqData.Page
	}
	if reqData != nil && reqData.Limit != nil && *reqData.Limit > 0 {
		limit = *reqData.Limit
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.Feedback{})

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch feedback!", nil)
	}

	var entries []models.Feedback
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&entries).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch feedback!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Feedback fetched successfully!", fiber.Map{
		"feedback": entries,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// AdminFeedbackStats aggregates the dashboard numbers: total submissions,
// average rating and a count per rating value.
func AdminFeedbackStats(c *fiber.Ctx) error {
	db := database.Database.Db

	var total int64
	if err := db.Model(&models.Feedback{}).Count(&total).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch feedback stats!", nil)
	}

	var average float64
	if total > 0 {
		if err := db.Model(&models.Feedback{}).Select("AVG(rating)").Scan(&average).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch feedback stats!", nil)
		}
	}

	type ratingCount struct {
		Rating int   `json:"rating"`
		Count  int64 `json:"count"`
	}

	var rows []ratingCount
	if err := db.Model(&models.Feedback{}).
		Select("rating, COUNT(*) as count").
		Group("rating").
		Scan(&rows).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch feedback stats!", nil)
	}

	// Every rating 1..5 appears in the breakdown, even at zero.
	counts := map[int]int64{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
	for _, row := range rows {
		counts[row.Rating] = row.Count
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Feedback stats fetched successfully!", fiber.Map{
		"total":   total,
		"average": average,
		"counts":  counts,
	})
}
