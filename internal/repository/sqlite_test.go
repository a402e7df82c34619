package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwenger/vocatrain/internal/models"
	mock_repository "github.com/lwenger/vocatrain/internal/repository/mock"
)

func newSQLiteStoreMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_repository.MockQueryI)) *SQLiteStore {
	db := mock_repository.NewMockQueryI(ctrl)
	if setupMock != nil {
		setupMock(db)
	}

	return &SQLiteStore{db: db}
}

func TestSQLiteStore_Load(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		want    models.Store
		wantErr bool
	}{
		{
			name: "success",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().SelectContext(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
						*dest.(*[]collectionRow) = []collectionRow{{Name: "Tiere"}}
						return nil
					})
				mqi.EXPECT().SelectContext(gomock.Any(), gomock.Any(), gomock.Any(), "Tiere").DoAndReturn(
					func(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
						*dest.(*[]models.Pair) = []models.Pair{{De: "Hund", Fr: "chien"}}
						return nil
					})
			},
			want: models.Store{
				Collections: []models.Collection{
					{Name: "Tiere", Items: []models.Pair{{De: "Hund", Fr: "chien"}}},
				},
			},
		},
		{
			name: "empty database",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().SelectContext(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			want: models.Store{},
		},
		{
			name: "failed select",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().SelectContext(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("select error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := newSQLiteStoreMock(t, ctrl, tt.f)

			store, err := repo.Load(context.Background())
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, store)
		})
	}
}

func TestSQLiteStore_Save(t *testing.T) {
	t.Parallel()

	store := models.Store{
		Collections: []models.Collection{
			{Name: "Tiere", Items: []models.Pair{{De: "Hund", Fr: "chien"}, {De: "die Katze", Fr: "le chat"}}},
		},
	}

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		wantErr bool
	}{
		{
			name: "success",
			f: func(mqi *mock_repository.MockQueryI) {
				// Two deletes, one collection insert, two entry inserts.
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).Times(5)
			},
			wantErr: false,
		},
		{
			name: "failed exec",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("exec error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := newSQLiteStoreMock(t, ctrl, tt.f)

			err := repo.Save(context.Background(), store)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
		})
	}
}
