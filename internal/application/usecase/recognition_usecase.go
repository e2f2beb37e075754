package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jhoicas/maletas-pro/internal/application/dto"
	"github.com/jhoicas/maletas-pro/internal/application/ports"
	"github.com/jhoicas/maletas-pro/internal/domain"
	"github.com/rs/zerolog/log"
)

// recognitionTimeout tope por imagen para la llamada externa.
const recognitionTimeout = 15 * time.Second

// RecognitionUseCase orquesta el reconocimiento de piezas a partir de fotos.
// Cada llamada al servicio externo lleva un context.WithTimeout para que las
// latencias remotas no bloqueen los goroutines del servidor.
type RecognitionUseCase struct {
	svc ports.RecognitionService
}

// NewRecognitionUseCase construye el caso de uso inyectando el puerto.
func NewRecognitionUseCase(svc ports.RecognitionService) *RecognitionUseCase {
	return &RecognitionUseCase{svc: svc}
}

// Recognize procesa una sola imagen. Cualquier fallo (timeout incluido) se
// reporta como ErrRecognitionFailed sin recuperación parcial: cero piezas.
func (uc *RecognitionUseCase) Recognize(ctx context.Context, image string) ([]dto.RecognizedItem, error) {
	if image == "" {
		return nil, domain.ErrInvalidInput
	}
	ctx, cancel := context.WithTimeout(ctx, recognitionTimeout)
	defer cancel()

	items, err := uc.svc.RecognizeItems(ctx, image)
	if err != nil {
		log.Error().Err(err).Msg("reconocimiento de imagen fallido")
		return nil, fmt.Errorf("%w: %v", domain.ErrRecognitionFailed, err)
	}
	if items == nil {
		items = []dto.RecognizedItem{}
	}
	return items, nil
}

// RecognizeBatch procesa varias imágenes en paralelo. Cada imagen falla de
// forma independiente: el resultado del lote es una lista con una entrada por
// imagen (piezas o motivo del fallo), en el orden recibido.
func (uc *RecognitionUseCase) RecognizeBatch(ctx context.Context, images []string) *dto.RecognizeBatchResponse {
	results := make([]dto.ImageResult, len(images))

	var wg sync.WaitGroup
	for i, img := range images {
		wg.Add(1)
		go func(i int, img string) {
			defer wg.Done()
			items, err := uc.Recognize(ctx, img)
			if err != nil {
				results[i] = dto.ImageResult{Error: err.Error()}
				return
			}
			results[i] = dto.ImageResult{Items: items}
		}(i, img)
	}
	wg.Wait()

	return &dto.RecognizeBatchResponse{Results: results}
}
