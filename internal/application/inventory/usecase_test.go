package inventory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/lims-api/internal/application/dto"
	"github.com/jhoicas/lims-api/internal/application/inventory"
	"github.com/jhoicas/lims-api/internal/domain"
	"github.com/jhoicas/lims-api/internal/domain/entity"
	"github.com/jhoicas/lims-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// fixture arma el caso de uso sobre un Store en memoria con un componente sembrado.
func fixture(t *testing.T, quantity int64) (*inventory.RecordMovementUseCase, *memory.Store, *entity.Component) {
	t.Helper()
	store := memory.NewStore()
	componentRepo := memory.NewComponentRepository(store)

	component := &entity.Component{
		ID:                   "comp-1",
		Name:                 "Resistencia 10k 1/4W",
		PartNumber:           "RES-10K-025",
		Category:             entity.CategoryResistors,
		Quantity:             quantity,
		CriticalLowThreshold: 50,
		CreatedAt:            time.Now().AddDate(0, 0, -30),
		UpdatedAt:            time.Now().AddDate(0, 0, -30),
	}
	require.NoError(t, componentRepo.Create(component))

	uc := inventory.NewRecordMovementUseCase(memory.NewTxRunner(store), componentRepo)
	return uc, store, component
}

func outward(componentID string, quantity int64) inventory.MovementInput {
	return inventory.MovementInput{
		ComponentID: componentID,
		Type:        entity.MovementTypeOutward,
		Quantity:    quantity,
		UserID:      "user-1",
		Username:    "jperez",
		Reason:      "consumo en protoboard",
		Project:     "fuente regulada",
	}
}

func currentQuantity(t *testing.T, store *memory.Store, id string) int64 {
	t.Helper()
	c, err := memory.NewComponentRepository(store).GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, c)
	return c.Quantity
}

func pageReq(limit, offset int) dto.PageRequest {
	return dto.PageRequest{Limit: limit, Offset: offset}
}

func ledgerLen(t *testing.T, store *memory.Store, componentID string) int {
	t.Helper()
	list, err := memory.NewMovementRepository(store).ListByComponent(componentID, 0, 0)
	require.NoError(t, err)
	return len(list)
}

// ──────────────────────────────────────────────────────────────────────────────
// Movimientos básicos
// ──────────────────────────────────────────────────────────────────────────────

// Salida válida: resta del stock y agrega la línea al ledger.
func TestRecordMovement_SalidaRestaStock(t *testing.T) {
	uc, store, c := fixture(t, 1500)

	mov, err := uc.RecordMovement(context.Background(), outward(c.ID, 200))
	require.NoError(t, err)

	assert.Equal(t, int64(1300), currentQuantity(t, store, c.ID))
	assert.Equal(t, 1, ledgerLen(t, store, c.ID))
	assert.Equal(t, entity.MovementTypeOutward, mov.Type)
	assert.Equal(t, int64(200), mov.Quantity)
	assert.NotEmpty(t, mov.ID)
}

// Entrada: suma al stock.
func TestRecordMovement_EntradaSumaStock(t *testing.T) {
	uc, store, c := fixture(t, 100)

	in := outward(c.ID, 400)
	in.Type = entity.MovementTypeInward
	in.Reason = "compra distribuidor"
	_, err := uc.RecordMovement(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, int64(500), currentQuantity(t, store, c.ID))
	assert.Equal(t, 1, ledgerLen(t, store, c.ID))
}

// El movimiento actualiza LastMovement del componente.
func TestRecordMovement_ActualizaUltimoMovimiento(t *testing.T) {
	uc, store, c := fixture(t, 100)
	require.Nil(t, c.LastMovement)

	_, err := uc.RecordMovement(context.Background(), outward(c.ID, 10))
	require.NoError(t, err)

	after, err := memory.NewComponentRepository(store).GetByID(c.ID)
	require.NoError(t, err)
	require.NotNil(t, after.LastMovement)
	assert.WithinDuration(t, time.Now(), *after.LastMovement, 5*time.Second)
}

// ──────────────────────────────────────────────────────────────────────────────
// Stock insuficiente
// ──────────────────────────────────────────────────────────────────────────────

// Salida mayor al disponible: rechazo con disponible/solicitado, sin tocar nada.
func TestRecordMovement_StockInsuficienteNoMutaNada(t *testing.T) {
	uc, store, c := fixture(t, 25)

	_, err := uc.RecordMovement(context.Background(), outward(c.ID, 100))
	require.Error(t, err)

	var insufficient *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, int64(25), insufficient.Available)
	assert.Equal(t, int64(100), insufficient.Requested)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Ni la cantidad ni el ledger cambian
	assert.Equal(t, int64(25), currentQuantity(t, store, c.ID))
	assert.Equal(t, 0, ledgerLen(t, store, c.ID))
}

// Salida del stock exacto deja el componente en cero, no es rechazo.
func TestRecordMovement_SalidaExactaDejaCero(t *testing.T) {
	uc, store, c := fixture(t, 200)

	_, err := uc.RecordMovement(context.Background(), outward(c.ID, 200))
	require.NoError(t, err)
	assert.Equal(t, int64(0), currentQuantity(t, store, c.ID))
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación de entrada
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordMovement_EntradaInvalida(t *testing.T) {
	uc, store, c := fixture(t, 100)

	cases := []struct {
		name   string
		mutate func(*inventory.MovementInput)
	}{
		{"tipo desconocido", func(in *inventory.MovementInput) { in.Type = "transfer" }},
		{"cantidad cero", func(in *inventory.MovementInput) { in.Quantity = 0 }},
		{"cantidad negativa", func(in *inventory.MovementInput) { in.Quantity = -5 }},
		{"motivo vacío", func(in *inventory.MovementInput) { in.Reason = "   " }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := outward(c.ID, 10)
			tc.mutate(&in)
			_, err := uc.RecordMovement(context.Background(), in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}

	// Ningún intento inválido tocó el estado
	assert.Equal(t, int64(100), currentQuantity(t, store, c.ID))
	assert.Equal(t, 0, ledgerLen(t, store, c.ID))
}

func TestRecordMovement_ComponenteInexistente(t *testing.T) {
	uc, _, _ := fixture(t, 100)

	_, err := uc.RecordMovement(context.Background(), outward("no-existe", 10))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Concurrencia — serialización del check-then-act
// ──────────────────────────────────────────────────────────────────────────────

// N salidas concurrentes que en conjunto consumen el stock exacto: todas deben
// aplicar, el stock final es cero y el ledger tiene exactamente N líneas.
func TestRecordMovement_SalidasConcurrentesSerializadas(t *testing.T) {
	const (
		workers = 50
		perTake = 10
		initial = workers * perTake
	)
	uc, store, c := fixture(t, initial)

	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.RecordMovement(context.Background(), outward(c.ID, perTake))
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
	assert.Equal(t, int64(0), currentQuantity(t, store, c.ID))
	assert.Equal(t, workers, ledgerLen(t, store, c.ID))
}

// Con stock para la mitad de los intentos, la suma de salidas aplicadas nunca
// supera el disponible y el ledger solo registra las aplicadas.
func TestRecordMovement_ConcurrenciaRespetaDisponible(t *testing.T) {
	const (
		workers = 20
		perTake = 10
	)
	uc, store, c := fixture(t, workers/2*perTake)

	var wg sync.WaitGroup
	var mu sync.Mutex
	applied := 0
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := uc.RecordMovement(context.Background(), outward(c.ID, perTake)); err == nil {
				mu.Lock()
				applied++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, workers/2, applied, "solo la mitad de las salidas cabe en el stock")
	assert.Equal(t, int64(0), currentQuantity(t, store, c.ID))
	assert.Equal(t, applied, ledgerLen(t, store, c.ID))
}

// ──────────────────────────────────────────────────────────────────────────────
// Ledger de solo lectura
// ──────────────────────────────────────────────────────────────────────────────

func TestLedger_MasRecientesPrimero(t *testing.T) {
	uc, store, c := fixture(t, 1000)
	ledger := inventory.NewLedgerUseCase(memory.NewMovementRepository(store))

	for i := int64(1); i <= 3; i++ {
		_, err := uc.RecordMovement(context.Background(), outward(c.ID, i))
		require.NoError(t, err)
	}

	out, err := ledger.ListByComponent(c.ID, pageReq(10, 0))
	require.NoError(t, err)
	require.Len(t, out.Items, 3)
	assert.Equal(t, int64(3), out.Items[0].Quantity, "el último movimiento va primero")
	assert.Equal(t, int64(1), out.Items[2].Quantity)
}

func TestLedger_ComponenteDesconocidoDevuelveVacio(t *testing.T) {
	_, store, _ := fixture(t, 100)
	ledger := inventory.NewLedgerUseCase(memory.NewMovementRepository(store))

	out, err := ledger.ListByComponent("no-existe", pageReq(10, 0))
	require.NoError(t, err)
	assert.Empty(t, out.Items, "componente sin historial devuelve lista vacía, no error")
}
