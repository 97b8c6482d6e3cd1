// Package alerts deriva las señales de advertencia del catálogo: stock bajo y
// stock antiguo. Las notificaciones se recalculan en cada consulta (idempotente);
// el único estado persistido es el flag de leído.
package alerts

import (
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/lims-api/internal/domain"
	"github.com/jhoicas/lims-api/internal/domain/entity"
	"github.com/jhoicas/lims-api/internal/domain/repository"
	"github.com/jhoicas/lims-api/internal/domain/stock"
)

// AlertsUseCase deriva notificaciones a partir del estado actual del catálogo.
type AlertsUseCase struct {
	componentRepo repository.ComponentRepository
	readRepo      repository.NotificationReadRepository
	windowDays    int // ventana de antigüedad para old_stock
}

// NewAlertsUseCase construye el caso de uso. windowDays <= 0 cae al default de 90.
func NewAlertsUseCase(
	componentRepo repository.ComponentRepository,
	readRepo repository.NotificationReadRepository,
	windowDays int,
) *AlertsUseCase {
	if windowDays <= 0 {
		windowDays = 90
	}
	return &AlertsUseCase{componentRepo: componentRepo, readRepo: readRepo, windowDays: windowDays}
}

// WindowDays devuelve la ventana de antigüedad configurada.
func (uc *AlertsUseCase) WindowDays() int { return uc.windowDays }

// DeriveNotifications recalcula las notificaciones del catálogo completo para el
// instante now. Orden: primero low_stock, luego old_stock; dentro de cada clase
// por ID de componente ascendente. Con el mismo estado del catálogo el resultado
// es idéntico, salvo los flags de leído que viven en su propio almacén.
func (uc *AlertsUseCase) DeriveNotifications(now time.Time) ([]entity.Notification, error) {
	components, err := uc.componentRepo.Search(repository.SearchFilters{})
	if err != nil {
		return nil, err
	}
	readKeys, err := uc.readRepo.ListRead()
	if err != nil {
		return nil, err
	}

	var lowStock, oldStock []entity.Notification
	for _, c := range components {
		if level := stock.LowStockCheck(c.Quantity, c.CriticalLowThreshold); level != stock.LevelGood {
			lowStock = append(lowStock, uc.build(entity.NotificationLowStock, c, level, now, readKeys))
		}
		if stock.StaleStockCheck(c.LastMovement, c.CreatedAt, now, uc.windowDays) {
			oldStock = append(oldStock, uc.build(entity.NotificationOldStock, c, "", now, readKeys))
		}
	}
	sortByComponentID(lowStock)
	sortByComponentID(oldStock)

	return append(lowStock, oldStock...), nil
}

// MarkRead cambia el flag de leído de una notificación derivada.
func (uc *AlertsUseCase) MarkRead(kind, componentID string, read bool) error {
	if !entity.IsValidNotificationKind(kind) {
		return domain.ErrInvalidInput
	}
	component, err := uc.componentRepo.GetByID(componentID)
	if err != nil {
		return err
	}
	if component == nil {
		return domain.ErrNotFound
	}
	return uc.readRepo.SetRead(kind, componentID, read)
}

func (uc *AlertsUseCase) build(kind string, c *entity.Component, level string, now time.Time, readKeys map[string]bool) entity.Notification {
	key := entity.NotificationKey(kind, c.ID)
	var msg string
	switch kind {
	case entity.NotificationLowStock:
		msg = fmt.Sprintf("Stock %s: %s tiene %d unidades (umbral crítico: %d)",
			levelLabel(level), c.Name, c.Quantity, c.CriticalLowThreshold)
	case entity.NotificationOldStock:
		msg = fmt.Sprintf("Stock antiguo: %s lleva más de %d días sin movimientos", c.Name, uc.windowDays)
	}
	return entity.Notification{
		ID:            key,
		Kind:          kind,
		ComponentID:   c.ID,
		ComponentName: c.Name,
		Message:       msg,
		Timestamp:     now,
		Read:          readKeys[key],
	}
}

func levelLabel(level string) string {
	if level == stock.LevelCritical {
		return "crítico"
	}
	return "bajo"
}

func sortByComponentID(list []entity.Notification) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].ComponentID < list[j].ComponentID
	})
}
