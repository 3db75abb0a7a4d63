package handlers

import (
	"context"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"rpchat/internal/config"
	"rpchat/internal/service"
)

// HealthChecker is satisfied by *database.DB.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

type Handlers struct {
	AuthService      service.AuthService
	CharacterService service.CharacterService
	LocationService  service.LocationService
	MessageService   service.MessageService
	PostService      service.PostService
	AvatarService    service.AvatarService
	TablesService    service.TablesService
	DB               HealthChecker
	Cfg              *config.Config
	Log              *zap.Logger
	Validate         *validator.Validate
}

func NewHandlers(service *service.Service, db HealthChecker, config *config.Config, log *zap.Logger) *Handlers {
	return &Handlers{
		AuthService:      service.Auth,
		CharacterService: service.Character,
		LocationService:  service.Location,
		MessageService:   service.Message,
		PostService:      service.Post,
		AvatarService:    service.Avatar,
		TablesService:    service.Tables,
		DB:               db,
		Cfg:              config,
		Log:              log,
		Validate:         NewValidator(),
	}
}

// NewValidator returns a validator that reports fields by their JSON names.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}
