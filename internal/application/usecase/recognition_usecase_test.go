package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jhoicas/maletas-pro/internal/application/dto"
	"github.com/jhoicas/maletas-pro/internal/application/usecase"
	"github.com/jhoicas/maletas-pro/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRecognitionService responde según la imagen recibida; "bad" falla.
type fakeRecognitionService struct {
	items []dto.RecognizedItem
}

func (f *fakeRecognitionService) RecognizeItems(_ context.Context, image string) ([]dto.RecognizedItem, error) {
	if image == "bad" {
		return nil, errors.New("respuesta ilegible del modelo")
	}
	return f.items, nil
}

func TestRecognize(t *testing.T) {
	svc := &fakeRecognitionService{
		items: []dto.RecognizedItem{
			{Description: "Anillo de oro", Price: decPtr("100")},
			{Description: "Pulsera", Price: nil},
		},
	}
	uc := usecase.NewRecognitionUseCase(svc)

	items, err := uc.Recognize(context.Background(), "data:image/jpeg;base64,xxx")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Anillo de oro", items[0].Description)
	assert.Nil(t, items[1].Price)
}

func TestRecognize_ImagenVacia(t *testing.T) {
	uc := usecase.NewRecognitionUseCase(&fakeRecognitionService{})
	_, err := uc.Recognize(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRecognize_FalloDelServicio(t *testing.T) {
	uc := usecase.NewRecognitionUseCase(&fakeRecognitionService{})
	_, err := uc.Recognize(context.Background(), "bad")
	assert.ErrorIs(t, err, domain.ErrRecognitionFailed)
}

func TestRecognize_SinPiezasDevuelveListaVacia(t *testing.T) {
	uc := usecase.NewRecognitionUseCase(&fakeRecognitionService{items: nil})
	items, err := uc.Recognize(context.Background(), "ok")
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestRecognizeBatch_CadaImagenFallaPorSeparado(t *testing.T) {
	svc := &fakeRecognitionService{
		items: []dto.RecognizedItem{{Description: "Collar"}},
	}
	uc := usecase.NewRecognitionUseCase(svc)

	out := uc.RecognizeBatch(context.Background(), []string{"ok-1", "bad", "ok-2"})
	require.Len(t, out.Results, 3)

	assert.Empty(t, out.Results[0].Error)
	require.Len(t, out.Results[0].Items, 1)

	assert.NotEmpty(t, out.Results[1].Error, "la imagen fallida reporta su motivo")
	assert.Empty(t, out.Results[1].Items)

	assert.Empty(t, out.Results[2].Error)
	require.Len(t, out.Results[2].Items, 1)
}
