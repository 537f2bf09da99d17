package services

import (
	"context"
	"math"

	apperrors "food-delivery-backend/common/errors"
	"food-delivery-backend/models"
	"food-delivery-backend/repository"
)

const topFoodsLimit = 5

// TopFood is a catalog item joined with its total ordered quantity.
type TopFood struct {
	models.Food
	TotalOrdered int `json:"totalOrdered"`
}

// AnalyticsReport is the admin dashboard payload. Everything is derived
// fresh per request from the orders and foods collections; there is no
// incremental maintenance at this volume.
type AnalyticsReport struct {
	TotalOrders       int64     `json:"totalOrders"`
	TotalRevenue      float64   `json:"totalRevenue"`
	AverageOrderValue float64   `json:"averageOrderValue"`
	TotalFoods        int64     `json:"totalFoods"`
	PendingOrders     int64     `json:"pendingOrders"`
	ConfirmedOrders   int64     `json:"confirmedOrders"`
	DeliveredOrders   int64     `json:"deliveredOrders"`
	CancelledOrders   int64     `json:"cancelledOrders"`
	CompletionRate    float64   `json:"completionRate"`
	TotalReviews      int64     `json:"totalReviews"`
	AverageRating     float64   `json:"averageRating"`
	TopFoods          []TopFood `json:"topFoods"`
}

// AnalyticsService is a pure read-side aggregator over orders and foods.
type AnalyticsService struct {
	orders repository.OrderRepository
	foods  repository.FoodRepository
}

func NewAnalyticsService(orders repository.OrderRepository, foods repository.FoodRepository) *AnalyticsService {
	return &AnalyticsService{
		orders: orders,
		foods:  foods,
	}
}

// Overview computes the full dashboard report. Rates and averages are 0
// (never NaN or Inf) when there are no orders.
func (s *AnalyticsService) Overview(ctx context.Context) (*AnalyticsReport, *apperrors.Error) {
	totalOrders, err := s.orders.Count(ctx)
	if err != nil {
		return nil, apperrors.Internal("Failed to generate analytics", err)
	}
	totalFoods, err := s.foods.CountAll(ctx)
	if err != nil {
		return nil, apperrors.Internal("Failed to generate analytics", err)
	}
	totalRevenue, err := s.orders.TotalRevenue(ctx)
	if err != nil {
		return nil, apperrors.Internal("Failed to generate analytics", err)
	}
	statusCounts, err := s.orders.StatusCounts(ctx)
	if err != nil {
		return nil, apperrors.Internal("Failed to generate analytics", err)
	}
	totalReviews, averageRating, err := s.foods.ReviewTotals(ctx)
	if err != nil {
		return nil, apperrors.Internal("Failed to generate analytics", err)
	}

	report := &AnalyticsReport{
		TotalOrders:     totalOrders,
		TotalRevenue:    totalRevenue,
		TotalFoods:      totalFoods,
		PendingOrders:   statusCounts[models.StatusPending],
		ConfirmedOrders: statusCounts[models.StatusConfirmed],
		DeliveredOrders: statusCounts[models.StatusDelivered],
		CancelledOrders: statusCounts[models.StatusCancelled],
		TotalReviews:    totalReviews,
		AverageRating:   round1(averageRating),
		TopFoods:        []TopFood{},
	}
	if totalOrders > 0 {
		report.CompletionRate = round1(float64(report.DeliveredOrders) / float64(totalOrders) * 100)
		report.AverageOrderValue = round2(totalRevenue / float64(totalOrders))
	}

	top, err := s.orders.TopOrderedFoods(ctx, topFoodsLimit)
	if err != nil {
		return nil, apperrors.Internal("Failed to generate analytics", err)
	}
	for _, row := range top {
		food, err := s.foods.FindByIDAny(ctx, row.FoodID)
		if err != nil {
			return nil, apperrors.Internal("Failed to generate analytics", err)
		}
		if food == nil {
			continue
		}
		report.TopFoods = append(report.TopFoods, TopFood{Food: *food, TotalOrdered: row.TotalOrdered})
	}

	return report, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
