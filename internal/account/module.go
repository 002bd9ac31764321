package account

import (
	"github.com/casbin/casbin/v3"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shandysiswandi/accountly/internal/account/inbound"
	"github.com/shandysiswandi/accountly/internal/account/otp"
	"github.com/shandysiswandi/accountly/internal/account/outbound/cache"
	"github.com/shandysiswandi/accountly/internal/account/outbound/db"
	"github.com/shandysiswandi/accountly/internal/account/outbound/mq"
	"github.com/shandysiswandi/accountly/internal/account/usecase"
	"github.com/shandysiswandi/accountly/internal/pkg/clock"
	"github.com/shandysiswandi/accountly/internal/pkg/config"
	"github.com/shandysiswandi/accountly/internal/pkg/goroutine"
	"github.com/shandysiswandi/accountly/internal/pkg/hash"
	"github.com/shandysiswandi/accountly/internal/pkg/idempotency"
	"github.com/shandysiswandi/accountly/internal/pkg/instrument"
	"github.com/shandysiswandi/accountly/internal/pkg/messaging"
	"github.com/shandysiswandi/accountly/internal/pkg/router"
	"github.com/shandysiswandi/accountly/internal/pkg/uid"
	"github.com/shandysiswandi/accountly/internal/pkg/validator"
)

type Dependency struct {
	DBConn      *pgxpool.Pool              `validate:"required"`
	CacheConn   *redis.Client              `validate:"required"`
	Goroutine   *goroutine.Manager         `validate:"required"`
	Enforcer    *casbin.Enforcer           `validate:"required"`
	Router      *router.Router             `validate:"required"`
	Idempotency idempotency.Idempotency    `validate:"required"`
	Messaging   messaging.Messaging        `validate:"required"`
	Config      config.Config              `validate:"required"`
	Instrument  instrument.Instrumentation `validate:"required"`
	EID         uid.NumberID               `validate:"required"`
	UUID        uid.StringID               `validate:"required"`
	HMAC        hash.Hash                  `validate:"required"`
	Bcrypt      hash.Hash                  `validate:"required"`
	Clock       clock.Clocker              `validate:"required"`
	Validator   validator.Validator        `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	repoDB := db.NewDB(dep.DBConn, dep.Instrument)
	repoCache := cache.NewCache(dep.CacheConn, dep.Instrument)
	repoMsg := mq.NewMessaging(dep.Messaging, dep.Instrument, dep.EID)
	otpValidator := otp.NewValidator(repoCache, dep.HMAC, dep.Clock)

	uc := usecase.New(usecase.Dependency{
		RepoDB:        repoDB,
		RepoCache:     repoCache,
		RepoMessaging: repoMsg,
		OTP:           otpValidator,
		Idempotency:   dep.Idempotency,
		Validator:     dep.Validator,
		Config:        dep.Config,
		Bcrypt:        dep.Bcrypt,
		UUID:          dep.UUID,
		Clock:         dep.Clock,
		Instrument:    dep.Instrument,
		Enforcer:      dep.Enforcer,
		Goroutine:     dep.Goroutine,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
