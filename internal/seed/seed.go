package seed

import (
	"context"

	"github.com/sagarshinde/studyhub/internal/app/models"
	"github.com/sagarshinde/studyhub/internal/app/repositories"
	"github.com/sagarshinde/studyhub/internal/pkg/logger"
)

// Resources seeds the catalog with the starter set on first run. An
// already-initialized store is left untouched so moderation decisions
// survive restarts.
func Resources(ctx context.Context, repo *repositories.CatalogRepository) error {
	seeded, err := repo.Seeded(ctx)
	if err != nil {
		return err
	}
	if seeded {
		logger.Debug().Msg("Catalog already seeded, skipping")
		return nil
	}

	starter := []models.Resource{
		{
			ID:            "1",
			Title:         "Data Structures and Algorithms Complete Notes",
			Subject:       "Data Structures",
			Course:        models.CourseCS,
			Year:          models.YearFirst,
			Semester:      models.Semester2,
			Type:          models.TypeNote,
			UploadedBy:    "Rahul Verma",
			UploadDate:    "2023-10-15",
			DownloadCount: 124,
			Approved:      true,
			FileURL:       "#",
		},
		{
			ID:            "2",
			Title:         "Operating Systems Silberschatz",
			Subject:       "Operating Systems",
			Course:        models.CourseCS,
			Year:          models.YearSecond,
			Semester:      models.Semester3,
			Type:          models.TypeBook,
			UploadedBy:    "Admin",
			UploadDate:    "2023-08-20",
			DownloadCount: 543,
			Approved:      true,
			FileURL:       "#",
		},
		{
			ID:            "3",
			Title:         "Winter 2023 Question Paper",
			Subject:       "Core Java",
			Course:        models.CourseIT,
			Year:          models.YearSecond,
			Semester:      models.Semester4,
			Type:          models.TypePaper,
			UploadedBy:    "Priya Singh",
			UploadDate:    "2024-01-10",
			DownloadCount: 89,
			Approved:      true,
			FileURL:       "#",
		},
		{
			ID:            "4",
			Title:         "Pending AI Notes",
			Subject:       "AI",
			Course:        models.CourseCS,
			Year:          models.YearThird,
			Semester:      models.Semester5,
			Type:          models.TypeNote,
			UploadedBy:    "New Student",
			UploadDate:    "2024-05-20",
			DownloadCount: 0,
			Approved:      false,
			FileURL:       "#",
		},
	}

	if err := repo.ReplaceAll(ctx, starter); err != nil {
		return err
	}

	logger.Info().Int("count", len(starter)).Msg("Seeded catalog with starter resources")
	return nil
}
