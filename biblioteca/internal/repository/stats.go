package repository

import (
	"context"

	"github.com/duoc-capstone/biblioteca-service/biblioteca/internal/model"
)

type StatsRepository interface {
	DashboardStats(ctx context.Context) (model.DashboardStats, error)
}

func (r *repository) DashboardStats(ctx context.Context) (model.DashboardStats, error) {
	q := `
select (select count(*) from documentos)                                   as total_libros,
       (select count(*) from usuarios)                                     as usuarios_registrados,
       (select count(*) from prestamos where estado = 'activo')            as prestamos_activos,
       (select count(*) from prestamos where estado = 'vencido')           as prestamos_atrasados`

	var stats model.DashboardStats
	if err := r.db.GetContext(ctx, &stats, q); err != nil {
		return model.DashboardStats{}, err
	}
	return stats, nil
}
