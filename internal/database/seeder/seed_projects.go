package seeder

import (
	"context"
	"fmt"

	"portfolio-api/internal/database"
)

type ProjectsSeeder struct{}

func (ProjectsSeeder) Name() string { return "projects" }

func (ProjectsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "projects", "id", "title", "description", "technologies", "github_url", "created_at"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if _, err := tx.Exec(ctx, `DELETE FROM projects`); err != nil {
		return err
	}

	items := []struct {
		Title        string
		Description  string
		Technologies string
		GitHubURL    string
	}{
		{
			Title:        "Air Quality Index Prediction",
			Description:  "Forecast PM2.5 levels from daily weather and traffic data, framed as a binary classification of high or low pollution.",
			Technologies: "Python, Pandas, Scikit-learn",
			GitHubURL:    "https://github.com/example/air-quality-prediction",
		},
		{
			Title:        "Loan Default Prediction",
			Description:  "Predicted borrower default from Lending Club data using an artificial neural network, including feature engineering and model evaluation.",
			Technologies: "Python, TensorFlow, Keras, Pandas",
			GitHubURL:    "https://github.com/example/loan-default-prediction",
		},
		{
			Title:        "Text Summarization System",
			Description:  "Web application that summarizes the content behind a pasted URL via sentence segmentation, tokenization, and stop word removal.",
			Technologies: "Python, NLTK, Flask",
			GitHubURL:    "https://github.com/example/text-summarization",
		},
	}

	for _, it := range items {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO projects (title, description, technologies, github_url) VALUES ($1, $2, $3, $4)`,
			it.Title, it.Description, it.Technologies, it.GitHubURL,
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
