package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/taejinchoi-cbnu/gradescan-backend/internal/model"
)

// RequirementRepository handles graduation requirement data access.
type RequirementRepository struct {
	pool *pgxpool.Pool
}

// NewRequirementRepository creates a new RequirementRepository.
func NewRequirementRepository(pool *pgxpool.Pool) *RequirementRepository {
	return &RequirementRepository{pool: pool}
}

// ListAll retrieves every graduation requirement row. Called once at
// startup; the rows back the in-memory table for the process lifetime.
func (r *RequirementRepository) ListAll(ctx context.Context) ([]model.GraduationRequirement, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, cohort, major, total_credits,
		        ge_total, ge_basic, ge_general, ge_extended, ge_basic_science,
		        major_total, major_required, major_elective,
		        created_at, updated_at
		 FROM graduation_requirements
		 ORDER BY cohort, major`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reqs []model.GraduationRequirement
	for rows.Next() {
		var req model.GraduationRequirement
		if err := rows.Scan(
			&req.ID, &req.Cohort, &req.Major, &req.TotalCredits,
			&req.GeneralEducation.Total, &req.GeneralEducation.Basic,
			&req.GeneralEducation.General, &req.GeneralEducation.Extended,
			&req.GeneralEducation.BasicScience,
			&req.MajorCredits.Total, &req.MajorCredits.Required, &req.MajorCredits.Elective,
			&req.CreatedAt, &req.UpdatedAt,
		); err != nil {
			return nil, err
		}
		reqs = append(reqs, req)
	}
	return reqs, rows.Err()
}

// Upsert inserts a requirement row or updates it in place when the
// (cohort, major) key already exists. Used by the seeding command.
func (r *RequirementRepository) Upsert(ctx context.Context, req *model.GraduationRequirement) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO graduation_requirements
		   (cohort, major, total_credits,
		    ge_total, ge_basic, ge_general, ge_extended, ge_basic_science,
		    major_total, major_required, major_elective)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 ON CONFLICT (cohort, major) DO UPDATE SET
		   total_credits = EXCLUDED.total_credits,
		   ge_total = EXCLUDED.ge_total,
		   ge_basic = EXCLUDED.ge_basic,
		   ge_general = EXCLUDED.ge_general,
		   ge_extended = EXCLUDED.ge_extended,
		   ge_basic_science = EXCLUDED.ge_basic_science,
		   major_total = EXCLUDED.major_total,
		   major_required = EXCLUDED.major_required,
		   major_elective = EXCLUDED.major_elective,
		   updated_at = CURRENT_TIMESTAMP
		 RETURNING id`,
		req.Cohort, req.Major, req.TotalCredits,
		req.GeneralEducation.Total, req.GeneralEducation.Basic,
		req.GeneralEducation.General, req.GeneralEducation.Extended,
		req.GeneralEducation.BasicScience,
		req.MajorCredits.Total, req.MajorCredits.Required, req.MajorCredits.Elective,
	).Scan(&req.ID)
}
