package usecase

import (
	"context"
	"strconv"
	"strings"

	"github.com/jhoicas/nexus-coffee/internal/domain/entity"
	"github.com/jhoicas/nexus-coffee/internal/domain/repository"
	"github.com/jhoicas/nexus-coffee/pkg/logger"
)

// ConfigUseCase lectura y escritura de la tabla configuracion.
type ConfigUseCase struct {
	repo            repository.ConfigRepository
	defaultCurrency string
	log             *logger.Logger
}

// NewConfigUseCase defaultCurrency se usa cuando no existe la clave moneda.
func NewConfigUseCase(repo repository.ConfigRepository, defaultCurrency string, log *logger.Logger) *ConfigUseCase {
	if defaultCurrency == "" {
		defaultCurrency = entity.DefaultCurrency
	}
	if log == nil {
		log = logger.Nop()
	}
	return &ConfigUseCase{repo: repo, defaultCurrency: defaultCurrency, log: log}
}

func (uc *ConfigUseCase) GetAll(ctx context.Context) ([]*entity.ConfigEntry, error) {
	return uc.repo.GetAll(ctx)
}

// Get valor de una clave; (nil, nil) si no existe.
func (uc *ConfigUseCase) Get(ctx context.Context, key string) (*entity.ConfigEntry, error) {
	return uc.repo.Get(ctx, key)
}

// Set inserta o actualiza una clave.
func (uc *ConfigUseCase) Set(ctx context.Context, key, value string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return entity.ErrFieldRequired("clave")
	}
	if err := validateConfigValue(key, value); err != nil {
		return err
	}
	return uc.repo.Set(ctx, key, value)
}

// CurrencySymbol símbolo de moneda configurado. Ante error o clave vacía
// devuelve el símbolo por defecto; un reporte nunca falla por esto.
func (uc *ConfigUseCase) CurrencySymbol(ctx context.Context) string {
	e, err := uc.repo.Get(ctx, entity.ConfigMoneda)
	if err != nil {
		uc.log.Warn().Err(err).Msg("no se pudo leer moneda; se usa la predeterminada")
		return uc.defaultCurrency
	}
	if e == nil || strings.TrimSpace(e.Valor) == "" {
		return uc.defaultCurrency
	}
	return e.Valor
}

// CurrencyAccessor devuelve una función para los generadores de reportes.
func (uc *ConfigUseCase) CurrencyAccessor(ctx context.Context) func() string {
	symbol := uc.CurrencySymbol(ctx)
	return func() string { return symbol }
}

// ShopInfo datos de la cafetería para encabezados de reportes.
func (uc *ConfigUseCase) ShopInfo(ctx context.Context) (ShopInfo, error) {
	all, err := uc.repo.GetAll(ctx)
	if err != nil {
		return ShopInfo{}, err
	}
	kv := make(map[string]string, len(all))
	for _, e := range all {
		kv[e.Clave] = e.Valor
	}
	return ShopInfo{
		Nombre:    kv[entity.ConfigNombre],
		Direccion: kv[entity.ConfigDireccion],
		Telefono:  kv[entity.ConfigTelefono],
		Email:     kv[entity.ConfigEmail],
		RUC:       kv[entity.ConfigRUC],
	}, nil
}

// validateConfigValue las claves numéricas conocidas deben contener enteros no negativos.
func validateConfigValue(key, value string) error {
	switch key {
	case entity.ConfigStockMinimo, entity.ConfigIVA:
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || n < 0 {
			return entity.ErrFieldInvalid(key, "debe ser un entero no negativo")
		}
	case entity.ConfigMoneda:
		if strings.TrimSpace(value) == "" {
			return entity.ErrFieldRequired(key)
		}
	}
	return nil
}
