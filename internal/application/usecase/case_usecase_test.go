package usecase_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jhoicas/maletas-pro/internal/application/dto"
	"github.com/jhoicas/maletas-pro/internal/domain"
	"github.com/jhoicas/maletas-pro/internal/domain/entity"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func seedSeller(t *testing.T, f *fixture, name, phone string) string {
	t.Helper()
	resp, err := f.sellerUC.Create(dto.SaveSellerRequest{Name: name, Phone: phone})
	require.NoError(t, err)
	return resp.ID
}

func TestCaseCreate_GuardaMaletaConPiezasYFechas(t *testing.T) {
	f := newFixture()
	anaID := seedSeller(t, f, "Ana", "+57 300 123 4567")

	// Anillo 100 + Collar 50, comisión 30% calculada por el caller.
	before := time.Now()
	id, err := f.caseUC.Create(context.Background(), dto.SaveCaseRequest{
		SellerID: anaID,
		Photo:    "data:image/jpeg;base64,xxx",
		Items: []dto.CaseItemRequest{
			{Description: "Anillo de oro", Price: decPtr("100")},
			{Description: "Collar de plata", Price: decPtr("50")},
		},
		TotalGross:      dec("150"),
		CommissionValue: dec("45"),
		EstimatedProfit: dec("105"),
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	stored, err := f.cases.GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, stored)

	assert.Equal(t, entity.StatusInField, stored.Status)
	require.NotNil(t, stored.SellerID)
	assert.Equal(t, anaID, *stored.SellerID)
	assert.True(t, stored.TotalGross.Equal(dec("150")))
	assert.True(t, stored.CommissionValue.Equal(dec("45")))
	assert.True(t, stored.EstimatedProfit.Equal(dec("105")))

	// Entrega "ahora", devolución a +60 días exactos.
	assert.WithinDuration(t, before, stored.DeliveryDate, 5*time.Second)
	assert.Equal(t, stored.DeliveryDate.AddDate(0, 0, 60), stored.ReturnDate)

	items, err := f.items.ListByCase(id)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Anillo de oro", items[0].Description)
	require.NotNil(t, items[0].Price)
	assert.True(t, items[0].Price.Equal(dec("100")))
}

func TestCaseCreate_PiezaSinPrecio(t *testing.T) {
	f := newFixture()
	sellerID := seedSeller(t, f, "Luisa", "3001112233")

	id, err := f.caseUC.Create(context.Background(), dto.SaveCaseRequest{
		SellerID: sellerID,
		Items: []dto.CaseItemRequest{
			{Description: "Pulsera sin valorar", Price: nil},
		},
		TotalGross: dec("0"),
	})
	require.NoError(t, err)

	items, err := f.items.ListByCase(id)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Nil(t, items[0].Price)
}

// captureLog redirige el logger global de zerolog a un buffer durante el test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })
	return &buf
}

func TestCaseCreate_TotalesDescuadradosSePersistenConAviso(t *testing.T) {
	buf := captureLog(t)
	f := newFixture()
	sellerID := seedSeller(t, f, "Ana", "3001234567")

	// total_gross 999 contra piezas que suman 100: se guarda tal cual y queda
	// el aviso en el log, sin rechazar la operación.
	id, err := f.caseUC.Create(context.Background(), dto.SaveCaseRequest{
		SellerID:   sellerID,
		Items:      []dto.CaseItemRequest{{Description: "Anillo", Price: decPtr("100")}},
		TotalGross: dec("999"),
	})
	require.NoError(t, err)

	stored, err := f.cases.GetByID(id)
	require.NoError(t, err)
	assert.True(t, stored.TotalGross.Equal(dec("999")))
	assert.Contains(t, buf.String(), "total_gross")
	assert.Contains(t, buf.String(), `"level":"warn"`)

	buf.Reset()
	err = f.caseUC.Replace(context.Background(), id, dto.SaveCaseRequest{
		SellerID:   sellerID,
		Items:      []dto.CaseItemRequest{{Description: "Anillo", Price: decPtr("100")}},
		TotalGross: dec("50"),
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "total_gross")
}

func TestCaseCreate_TotalesCuadradosNoAvisan(t *testing.T) {
	buf := captureLog(t)
	f := newFixture()
	sellerID := seedSeller(t, f, "Ana", "3001234567")

	_, err := f.caseUC.Create(context.Background(), dto.SaveCaseRequest{
		SellerID: sellerID,
		Items: []dto.CaseItemRequest{
			{Description: "Anillo", Price: decPtr("100")},
			{Description: "Pulsera sin valorar", Price: nil}, // nil suma 0
		},
		TotalGross: dec("100"),
	})
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), "total_gross no coincide")
}

func TestCaseCreate_SinVendedora(t *testing.T) {
	f := newFixture()
	_, err := f.caseUC.Create(context.Background(), dto.SaveCaseRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCaseReplace_ReemplazaPiezasCompleto(t *testing.T) {
	f := newFixture()
	sellerID := seedSeller(t, f, "Ana", "3001234567")

	id, err := f.caseUC.Create(context.Background(), dto.SaveCaseRequest{
		SellerID:   sellerID,
		Items:      []dto.CaseItemRequest{{Description: "Anillo", Price: decPtr("100")}},
		TotalGross: dec("100"),
	})
	require.NoError(t, err)

	err = f.caseUC.Replace(context.Background(), id, dto.SaveCaseRequest{
		SellerID: sellerID,
		Items: []dto.CaseItemRequest{
			{Description: "Collar", Price: decPtr("80")},
			{Description: "Aretes", Price: decPtr("20")},
		},
		TotalGross:      dec("100"),
		CommissionValue: dec("30"),
		EstimatedProfit: dec("70"),
	})
	require.NoError(t, err)

	items, err := f.items.ListByCase(id)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Collar", items[0].Description)
	assert.Equal(t, "Aretes", items[1].Description)
}

func TestCaseReplace_ListaVaciaDejaMaletaSinPiezas(t *testing.T) {
	f := newFixture()
	sellerID := seedSeller(t, f, "Ana", "3001234567")

	id, err := f.caseUC.Create(context.Background(), dto.SaveCaseRequest{
		SellerID:   sellerID,
		Items:      []dto.CaseItemRequest{{Description: "Anillo", Price: decPtr("100")}},
		TotalGross: dec("100"),
	})
	require.NoError(t, err)

	err = f.caseUC.Replace(context.Background(), id, dto.SaveCaseRequest{
		SellerID: sellerID,
		Items:    []dto.CaseItemRequest{},
	})
	require.NoError(t, err)

	// La maleta sobrevive aunque quede sin piezas.
	stored, err := f.cases.GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, stored)

	items, err := f.items.ListByCase(id)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCaseReplace_NoExiste(t *testing.T) {
	f := newFixture()
	err := f.caseUC.Replace(context.Background(), "no-existe", dto.SaveCaseRequest{SellerID: "x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCaseChangeStatus(t *testing.T) {
	f := newFixture()
	sellerID := seedSeller(t, f, "Ana", "3001234567")
	id, err := f.caseUC.Create(context.Background(), dto.SaveCaseRequest{SellerID: sellerID})
	require.NoError(t, err)

	t.Run("valido", func(t *testing.T) {
		require.NoError(t, f.caseUC.ChangeStatus(id, "Finalized"))
		stored, _ := f.cases.GetByID(id)
		assert.Equal(t, entity.StatusFinalized, stored.Status)
	})

	t.Run("regreso a campo permitido", func(t *testing.T) {
		require.NoError(t, f.caseUC.ChangeStatus(id, "InField"))
		stored, _ := f.cases.GetByID(id)
		assert.Equal(t, entity.StatusInField, stored.Status)
	})

	t.Run("estado desconocido", func(t *testing.T) {
		assert.ErrorIs(t, f.caseUC.ChangeStatus(id, "Archived"), domain.ErrInvalidInput)
	})

	t.Run("maleta inexistente", func(t *testing.T) {
		assert.ErrorIs(t, f.caseUC.ChangeStatus("no-existe", "Finalized"), domain.ErrNotFound)
	})
}

func TestCaseDelete_ArrastraPiezas(t *testing.T) {
	f := newFixture()
	sellerID := seedSeller(t, f, "Ana", "3001234567")
	id, err := f.caseUC.Create(context.Background(), dto.SaveCaseRequest{
		SellerID:   sellerID,
		Items:      []dto.CaseItemRequest{{Description: "Anillo", Price: decPtr("100")}},
		TotalGross: dec("100"),
	})
	require.NoError(t, err)

	require.NoError(t, f.caseUC.Delete(id))

	stored, _ := f.cases.GetByID(id)
	assert.Nil(t, stored)
	items, _ := f.items.ListByCase(id)
	assert.Empty(t, items)

	assert.ErrorIs(t, f.caseUC.Delete(id), domain.ErrNotFound)
}

func TestCaseDeleteByStatus(t *testing.T) {
	f := newFixture()
	sellerID := seedSeller(t, f, "Ana", "3001234567")

	var finalized string
	for i := 0; i < 3; i++ {
		id, err := f.caseUC.Create(context.Background(), dto.SaveCaseRequest{SellerID: sellerID})
		require.NoError(t, err)
		finalized = id
	}
	require.NoError(t, f.caseUC.ChangeStatus(finalized, "Finalized"))

	n, err := f.caseUC.DeleteByStatus("InField")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	// La finalizada sobrevive al vaciado del bucket InField.
	stored, _ := f.cases.GetByID(finalized)
	require.NotNil(t, stored)

	_, err = f.caseUC.DeleteByStatus("Pending")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCaseReset_VaciaTodo(t *testing.T) {
	f := newFixture()
	sellerID := seedSeller(t, f, "Ana", "3001234567")
	_, err := f.caseUC.Create(context.Background(), dto.SaveCaseRequest{
		SellerID:   sellerID,
		Items:      []dto.CaseItemRequest{{Description: "Anillo", Price: decPtr("100")}},
		TotalGross: dec("100"),
	})
	require.NoError(t, err)

	require.NoError(t, f.caseUC.Reset(context.Background()))

	sellers, _ := f.sellers.List()
	assert.Empty(t, sellers)
	cases, _ := f.cases.ListWithSeller()
	assert.Empty(t, cases)
}

func TestCaseWhatsappLink(t *testing.T) {
	f := newFixture()
	sellerID := seedSeller(t, f, "Ana María", "+57 (300) 123-4567")
	id, err := f.caseUC.Create(context.Background(), dto.SaveCaseRequest{
		SellerID:   sellerID,
		TotalGross: dec("150"),
	})
	require.NoError(t, err)

	resp, err := f.caseUC.WhatsappLink(id)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(resp.Link, "https://wa.me/573001234567?text="), resp.Link)
	assert.NotContains(t, resp.Link, " ", "el mensaje debe ir URL-escapado")
	assert.Contains(t, resp.Link, "Ana")

	_, err = f.caseUC.WhatsappLink("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCaseList_IncluyeNombreDeVendedora(t *testing.T) {
	f := newFixture()
	sellerID := seedSeller(t, f, "Ana", "3001234567")
	_, err := f.caseUC.Create(context.Background(), dto.SaveCaseRequest{SellerID: sellerID})
	require.NoError(t, err)

	list, err := f.caseUC.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Ana", list[0].SellerName)
	assert.Equal(t, "InField", list[0].Status)
}

func TestCaseItems_MaletaInexistente(t *testing.T) {
	f := newFixture()
	_, err := f.caseUC.Items("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
