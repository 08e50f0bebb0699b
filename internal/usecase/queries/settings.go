package queries

import (
	"context"

	"hotel-fastbill/internal/domain/settings"
	"hotel-fastbill/internal/usecase/shared"
)

type SettingsQueries interface {
	Get(ctx context.Context) (settings.Settings, error)
}

type settingsQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewSettingsQueries(uow shared.UnitOfWork) SettingsQueries {
	return &settingsQueriesImpl{uow: uow}
}

func (q *settingsQueriesImpl) Get(ctx context.Context) (settings.Settings, error) {
	st, err := q.uow.Snapshot(ctx)
	if err != nil {
		return settings.Settings{}, err
	}
	return st.Settings, nil
}
