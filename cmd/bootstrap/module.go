package bootstrap

import (
	"hotel-frontdesk/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	components.PersistenceModule,
	CacheModule,
	components.UseCaseModule,
	components.HandlerModule,
	SchedulerModule,
)
