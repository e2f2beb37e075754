package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/jhoicas/maletas-pro/internal/application/dto"
	"github.com/jhoicas/maletas-pro/internal/application/ports"
	"github.com/shopspring/decimal"
)

// Verificar en tiempo de compilación que AnthropicVisionService implementa RecognitionService.
var _ ports.RecognitionService = (*AnthropicVisionService)(nil)

const (
	anthropicMessagesURL = "https://api.anthropic.com/v1/messages"
	anthropicVersion     = "2023-06-01"

	visionSystemPrompt = `Eres un asistente que inventaría joyas y bisutería fotografiadas para venta por consignación.
Devuelve ÚNICAMENTE un objeto JSON válido (sin markdown, sin bloques de código` + " ```json" + `) con esta estructura exacta:
{
  "items": [
    {"description": "<descripción corta de la pieza>", "price": <número o null>}
  ]
}

Reglas:
- Una entrada por pieza visible en la foto.
- description: obligatoria, en español, máximo 60 caracteres.
- price: el precio si aparece en una etiqueta legible; null si no se distingue.
- Si la foto no contiene piezas, devuelve {"items": []}.
- No incluyas texto fuera del JSON. Solo el objeto JSON.`
)

// AnthropicVisionService adaptador que implementa RecognitionService usando la
// Messages API de Anthropic con la foto como bloque de contenido de imagen.
// Usa net/http de la librería estándar; no requiere el SDK oficial.
type AnthropicVisionService struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewAnthropicVisionService construye el adaptador.
// model suele ser "claude-3-5-haiku-20241022".
// Si apiKey está vacío las llamadas devuelven error descriptivo en lugar de panic.
func NewAnthropicVisionService(apiKey, model string) *AnthropicVisionService {
	return &AnthropicVisionService{
		apiKey:  apiKey,
		model:   model,
		baseURL: anthropicMessagesURL,
		httpClient: &http.Client{
			// Timeout de red de 25 s; el use case impone además su propio context.WithTimeout.
			Timeout: 25 * time.Second,
		},
	}
}

// ── Estructuras internas del protocolo Anthropic Messages API ─────────────────

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string         `json:"role"`
	Content []contentBlock `json:"content"`
}

type contentBlock struct {
	Type   string       `json:"type"`
	Text   string       `json:"text,omitempty"`
	Source *imageSource `json:"source,omitempty"`
}

type imageSource struct {
	Type      string `json:"type"`
	MediaType string `json:"media_type"`
	Data      string `json:"data"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// recognitionPayload forma del JSON que devuelve el modelo.
type recognitionPayload struct {
	Items []struct {
		Description string           `json:"description"`
		Price       *decimal.Decimal `json:"price"`
	} `json:"items"`
}

// jsonBlockRe extrae el primer objeto JSON del texto aunque el modelo lo
// envuelva en markdown. Captura desde el primer '{' hasta el último '}'.
var jsonBlockRe = regexp.MustCompile(`(?s)\{.*\}`)

// ── Implementación del puerto ─────────────────────────────────────────────────

// RecognizeItems envía la foto a Claude y devuelve las piezas candidatas.
// image acepta base64 puro o un data URI ("data:image/png;base64,...").
func (s *AnthropicVisionService) RecognizeItems(ctx context.Context, image string) ([]dto.RecognizedItem, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("OCR: ANTHROPIC_API_KEY no configurado")
	}

	mediaType, data := splitDataURI(image)

	payload := anthropicRequest{
		Model:     s.model,
		MaxTokens: 1024,
		System:    visionSystemPrompt,
		Messages: []anthropicMessage{
			{
				Role: "user",
				Content: []contentBlock{
					{Type: "image", Source: &imageSource{Type: "base64", MediaType: mediaType, Data: data}},
					{Type: "text", Text: "Inventaría las piezas de esta foto."},
				},
			},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("OCR: serializar request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("OCR: crear HTTP request: %w", err)
	}
	req.Header.Set("x-api-key", s.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)
	req.Header.Set("content-type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("OCR: timeout o cancelación: %w", ctx.Err())
		}
		return nil, fmt.Errorf("OCR: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return nil, fmt.Errorf("OCR: leer respuesta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp anthropicResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return nil, fmt.Errorf("OCR: Anthropic error (%s): %s", errResp.Error.Type, errResp.Error.Message)
		}
		return nil, fmt.Errorf("OCR: Anthropic HTTP %d: %s", resp.StatusCode, string(rawBody))
	}

	var anthResp anthropicResponse
	if err := json.Unmarshal(rawBody, &anthResp); err != nil {
		return nil, fmt.Errorf("OCR: deserializar respuesta Anthropic: %w", err)
	}
	if len(anthResp.Content) == 0 {
		return nil, fmt.Errorf("OCR: el modelo devolvió respuesta vacía")
	}

	rawText := anthResp.Content[0].Text

	// Parseo seguro: extraer solo el bloque JSON aunque el modelo añada texto.
	cleanJSON := extractJSON(rawText)
	if cleanJSON == "" {
		return nil, fmt.Errorf("OCR: no se encontró JSON válido en la respuesta del modelo (respuesta: %s)", rawText)
	}

	var parsed recognitionPayload
	if err := json.Unmarshal([]byte(cleanJSON), &parsed); err != nil {
		return nil, fmt.Errorf("OCR: parsear JSON de piezas: %w (JSON extraído: %s)", err, cleanJSON)
	}

	items := make([]dto.RecognizedItem, 0, len(parsed.Items))
	for _, it := range parsed.Items {
		if it.Description == "" {
			continue
		}
		items = append(items, dto.RecognizedItem{Description: it.Description, Price: it.Price})
	}
	return items, nil
}

// splitDataURI separa el media type del contenido base64. Sin prefijo data URI
// asume image/jpeg, que es lo que envía la captura de cámara.
func splitDataURI(image string) (mediaType, data string) {
	if !strings.HasPrefix(image, "data:") {
		return "image/jpeg", image
	}
	rest := strings.TrimPrefix(image, "data:")
	idx := strings.Index(rest, ";base64,")
	if idx == -1 {
		return "image/jpeg", image
	}
	mediaType = rest[:idx]
	if mediaType == "" {
		mediaType = "image/jpeg"
	}
	return mediaType, rest[idx+len(";base64,"):]
}

// extractJSON extrae el primer objeto JSON bien formado de un texto libre.
// Estrategia en dos pasos:
//  1. Eliminar bloques de código markdown (```json … ``` o ``` … ```).
//  2. Usar regex para capturar el primer bloque { … }.
func extractJSON(text string) string {
	text = strings.TrimSpace(text)
	if idx := strings.Index(text, "```"); idx != -1 {
		after := text[idx+3:]
		if nl := strings.Index(after, "\n"); nl != -1 {
			after = after[nl+1:]
		}
		if close := strings.LastIndex(after, "```"); close != -1 {
			after = after[:close]
		}
		text = strings.TrimSpace(after)
	}

	if strings.HasPrefix(text, "{") {
		return text
	}

	match := jsonBlockRe.FindString(text)
	return strings.TrimSpace(match)
}
