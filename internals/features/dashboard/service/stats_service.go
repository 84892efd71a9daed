package service

import (
	"context"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	bookModel "nigerland_backend/internals/features/books/model"
	regModel "nigerland_backend/internals/features/conferences/model"
	contactModel "nigerland_backend/internals/features/contact/model"
	"nigerland_backend/internals/features/dashboard/dto"
	mlModel "nigerland_backend/internals/features/morelife/model"
	trainingModel "nigerland_backend/internals/features/trainings/model"
)

// CollectStats runs the dashboard counters concurrently. Each counter uses
// its own session off the shared pool, so the queries are safe to fan out.
func CollectStats(ctx context.Context, db *gorm.DB) (*dto.DashboardStats, error) {
	stats := &dto.DashboardStats{}
	g, ctx := errgroup.WithContext(ctx)

	count := func(dst *int64, query func(tx *gorm.DB) *gorm.DB) {
		g.Go(func() error {
			return query(db.WithContext(ctx)).Count(dst).Error
		})
	}

	count(&stats.TotalRegistrations, func(tx *gorm.DB) *gorm.DB {
		return tx.Model(&regModel.ConferenceRegistration{})
	})
	count(&stats.PendingRegistrations, func(tx *gorm.DB) *gorm.DB {
		return tx.Model(&regModel.ConferenceRegistration{}).Where("registration_status = ?", regModel.RegistrationStatusPending)
	})
	count(&stats.ConfirmedRegistrations, func(tx *gorm.DB) *gorm.DB {
		return tx.Model(&regModel.ConferenceRegistration{}).
			Where("registration_status IN ?", []string{regModel.RegistrationStatusConfirmed, regModel.RegistrationStatusPaid})
	})
	count(&stats.TotalPurchases, func(tx *gorm.DB) *gorm.DB {
		return tx.Model(&bookModel.BookPurchase{})
	})
	count(&stats.TotalEnrollments, func(tx *gorm.DB) *gorm.DB {
		return tx.Model(&trainingModel.TrainingEnrollment{})
	})
	count(&stats.TotalSessions, func(tx *gorm.DB) *gorm.DB {
		return tx.Model(&mlModel.MoreLifeSession{})
	})
	count(&stats.TotalMessages, func(tx *gorm.DB) *gorm.DB {
		return tx.Model(&contactModel.ContactMessage{})
	})
	count(&stats.UnreadMessages, func(tx *gorm.DB) *gorm.DB {
		return tx.Model(&contactModel.ContactMessage{}).Where("message_status = ?", contactModel.MessageStatusUnread)
	})

	var revenue *dto.RevenueBreakdown
	g.Go(func() error {
		var err error
		revenue, err = CollectRevenue(ctx, db)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	// The headline figure counts registration and book income only; training
	// and MoreLife income shows up in the revenue breakdown.
	stats.TotalRevenue = revenue.Registrations + revenue.BookSales
	return stats, nil
}

// CollectRevenue sums completed payments per income source. Pending and
// failed payments never count toward revenue.
func CollectRevenue(ctx context.Context, db *gorm.DB) (*dto.RevenueBreakdown, error) {
	revenue := &dto.RevenueBreakdown{}
	g, ctx := errgroup.WithContext(ctx)

	sum := func(dst *float64, model interface{}, column, payColumn string) {
		g.Go(func() error {
			return db.WithContext(ctx).Model(model).
				Where(payColumn+" = ?", "completed").
				Select("COALESCE(SUM(" + column + "), 0)").
				Scan(dst).Error
		})
	}

	sum(&revenue.Registrations, &regModel.ConferenceRegistration{}, "registration_amount", "registration_pay_state")
	sum(&revenue.BookSales, &bookModel.BookPurchase{}, "book_purchase_amount", "book_purchase_status")
	sum(&revenue.Trainings, &trainingModel.TrainingEnrollment{}, "enrollment_amount", "enrollment_pay_state")
	sum(&revenue.MoreLife, &mlModel.MoreLifeSession{}, "session_amount", "session_pay_state")

	if err := g.Wait(); err != nil {
		return nil, err
	}
	revenue.Total = revenue.Registrations + revenue.BookSales + revenue.Trainings + revenue.MoreLife
	return revenue, nil
}
