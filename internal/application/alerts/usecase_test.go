package alerts_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/lims-api/internal/application/alerts"
	"github.com/jhoicas/lims-api/internal/domain"
	"github.com/jhoicas/lims-api/internal/domain/entity"
	"github.com/jhoicas/lims-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var testNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

// seedComponent siembra un componente con cantidad, umbral y último movimiento dados.
func seedComponent(t *testing.T, store *memory.Store, id string, quantity, threshold int64, lastMovement *time.Time) {
	t.Helper()
	require.NoError(t, memory.NewComponentRepository(store).Create(&entity.Component{
		ID:                   id,
		Name:                 "Componente " + id,
		PartNumber:           "PN-" + id,
		Category:             entity.CategoryOther,
		Quantity:             quantity,
		CriticalLowThreshold: threshold,
		CreatedAt:            testNow.AddDate(0, 0, -30),
		UpdatedAt:            testNow.AddDate(0, 0, -30),
		LastMovement:         lastMovement,
	}))
}

func newUseCase(store *memory.Store) *alerts.AlertsUseCase {
	return alerts.NewAlertsUseCase(
		memory.NewComponentRepository(store),
		memory.NewNotificationReadRepository(store),
		90,
	)
}

func recent() *time.Time {
	t := testNow.AddDate(0, 0, -5)
	return &t
}

// ──────────────────────────────────────────────────────────────────────────────
// Derivación de low_stock
// ──────────────────────────────────────────────────────────────────────────────

// Cantidad bajo el umbral: una notificación low_stock con mensaje de nivel crítico.
func TestDeriveNotifications_StockCritico(t *testing.T) {
	store := memory.NewStore()
	seedComponent(t, store, "a", 25, 50, recent())
	uc := newUseCase(store)

	list, err := uc.DeriveNotifications(testNow)
	require.NoError(t, err)
	require.Len(t, list, 1)

	n := list[0]
	assert.Equal(t, entity.NotificationLowStock, n.Kind)
	assert.Equal(t, "a", n.ComponentID)
	assert.Contains(t, n.Message, "crítico")
	assert.Contains(t, n.Message, "25")
	assert.Contains(t, n.Message, "50")
	assert.False(t, n.Read)
}

// Fronteras del umbral sobre el derivador completo.
func TestDeriveNotifications_FronterasDelUmbral(t *testing.T) {
	cases := []struct {
		name     string
		quantity int64
		kinds    int    // notificaciones esperadas
		label    string // fragmento esperado del mensaje
	}{
		{"igual al umbral es crítico", 50, 1, "crítico"},
		{"doble del umbral es bajo", 100, 1, "bajo"},
		{"doble más uno no notifica", 101, 0, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := memory.NewStore()
			seedComponent(t, store, "a", tc.quantity, 50, recent())

			list, err := newUseCase(store).DeriveNotifications(testNow)
			require.NoError(t, err)
			require.Len(t, list, tc.kinds)
			if tc.kinds > 0 {
				assert.Contains(t, list[0].Message, tc.label)
			}
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Derivación de old_stock
// ──────────────────────────────────────────────────────────────────────────────

func TestDeriveNotifications_StockAntiguo(t *testing.T) {
	store := memory.NewStore()
	viejo := testNow.AddDate(0, 0, -120)
	seedComponent(t, store, "a", 500, 50, &viejo)

	list, err := newUseCase(store).DeriveNotifications(testNow)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, entity.NotificationOldStock, list[0].Kind)
	assert.Contains(t, list[0].Message, "90 días")
}

// Un componente puede disparar ambas señales a la vez.
func TestDeriveNotifications_AmbasSenales(t *testing.T) {
	store := memory.NewStore()
	viejo := testNow.AddDate(0, 0, -120)
	seedComponent(t, store, "a", 10, 50, &viejo)

	list, err := newUseCase(store).DeriveNotifications(testNow)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, entity.NotificationLowStock, list[0].Kind)
	assert.Equal(t, entity.NotificationOldStock, list[1].Kind)
}

// ──────────────────────────────────────────────────────────────────────────────
// Idempotencia y orden
// ──────────────────────────────────────────────────────────────────────────────

// Dos derivaciones sobre el mismo catálogo producen el mismo resultado.
func TestDeriveNotifications_Idempotente(t *testing.T) {
	store := memory.NewStore()
	viejo := testNow.AddDate(0, 0, -200)
	seedComponent(t, store, "b", 10, 50, recent())
	seedComponent(t, store, "a", 30, 50, recent())
	seedComponent(t, store, "c", 999, 50, &viejo)
	uc := newUseCase(store)

	first, err := uc.DeriveNotifications(testNow)
	require.NoError(t, err)
	second, err := uc.DeriveNotifications(testNow)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// Orden estable: primero low_stock, luego old_stock; dentro de cada clase por
// ID de componente ascendente.
func TestDeriveNotifications_OrdenEstable(t *testing.T) {
	store := memory.NewStore()
	viejo := testNow.AddDate(0, 0, -200)
	seedComponent(t, store, "b", 10, 50, recent())
	seedComponent(t, store, "a", 30, 50, recent())
	seedComponent(t, store, "d", 999, 50, &viejo)
	seedComponent(t, store, "c", 999, 50, &viejo)

	list, err := newUseCase(store).DeriveNotifications(testNow)
	require.NoError(t, err)
	require.Len(t, list, 4)

	assert.Equal(t, entity.NotificationLowStock, list[0].Kind)
	assert.Equal(t, "a", list[0].ComponentID)
	assert.Equal(t, "b", list[1].ComponentID)
	assert.Equal(t, entity.NotificationOldStock, list[2].Kind)
	assert.Equal(t, "c", list[2].ComponentID)
	assert.Equal(t, "d", list[3].ComponentID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Flags de leído
// ──────────────────────────────────────────────────────────────────────────────

// El flag sobrevive a la rederivación: la notificación se recalcula pero
// conserva su estado de leída.
func TestMarkRead_SobreviveRederivacion(t *testing.T) {
	store := memory.NewStore()
	seedComponent(t, store, "a", 10, 50, recent())
	uc := newUseCase(store)

	require.NoError(t, uc.MarkRead(entity.NotificationLowStock, "a", true))

	list, err := uc.DeriveNotifications(testNow)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].Read)

	// Y se puede volver a marcar como no leída
	require.NoError(t, uc.MarkRead(entity.NotificationLowStock, "a", false))
	list, err = uc.DeriveNotifications(testNow)
	require.NoError(t, err)
	assert.False(t, list[0].Read)
}

func TestMarkRead_Validaciones(t *testing.T) {
	store := memory.NewStore()
	seedComponent(t, store, "a", 10, 50, recent())
	uc := newUseCase(store)

	assert.ErrorIs(t, uc.MarkRead("otra_cosa", "a", true), domain.ErrInvalidInput,
		"kind fuera del enum debe rechazarse")
	assert.ErrorIs(t, uc.MarkRead(entity.NotificationLowStock, "no-existe", true), domain.ErrNotFound,
		"componente inexistente debe rechazarse")
}

// El flag es por (clase, componente): leer la señal de stock bajo no lee la de
// stock antiguo del mismo componente.
func TestMarkRead_FlagPorClase(t *testing.T) {
	store := memory.NewStore()
	viejo := testNow.AddDate(0, 0, -120)
	seedComponent(t, store, "a", 10, 50, &viejo)
	uc := newUseCase(store)

	require.NoError(t, uc.MarkRead(entity.NotificationLowStock, "a", true))

	list, err := uc.DeriveNotifications(testNow)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.True(t, list[0].Read, "low_stock marcada")
	assert.False(t, list[1].Read, "old_stock intacta")
}
