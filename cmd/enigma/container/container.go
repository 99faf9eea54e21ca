package container

import (
	"go.uber.org/fx"

	"github.com/sergeii/enigma/internal/core/usecases/addplugboardpair"
	"github.com/sergeii/enigma/internal/core/usecases/cleansessions"
	"github.com/sergeii/enigma/internal/core/usecases/configuremachine"
	"github.com/sergeii/enigma/internal/core/usecases/createsession"
	"github.com/sergeii/enigma/internal/core/usecases/encryptmessage"
	"github.com/sergeii/enigma/internal/core/usecases/generatesettings"
	"github.com/sergeii/enigma/internal/core/usecases/getsession"
	"github.com/sergeii/enigma/internal/core/usecases/removeplugboardpair"
	"github.com/sergeii/enigma/internal/core/usecases/removesession"
	"github.com/sergeii/enigma/internal/core/usecases/resetmachine"
)

type Container struct {
	CreateSession       createsession.UseCase
	GetSession          getsession.UseCase
	RemoveSession       removesession.UseCase
	ConfigureMachine    configuremachine.UseCase
	ResetMachine        resetmachine.UseCase
	GenerateSettings    generatesettings.UseCase
	AddPlugboardPair    addplugboardpair.UseCase
	RemovePlugboardPair removeplugboardpair.UseCase
	EncryptMessage      encryptmessage.UseCase
	CleanSessions       cleansessions.UseCase
}

func New(
	createSessionUseCase createsession.UseCase,
	getSessionUseCase getsession.UseCase,
	removeSessionUseCase removesession.UseCase,
	configureMachineUseCase configuremachine.UseCase,
	resetMachineUseCase resetmachine.UseCase,
	generateSettingsUseCase generatesettings.UseCase,
	addPlugboardPairUseCase addplugboardpair.UseCase,
	removePlugboardPairUseCase removeplugboardpair.UseCase,
	encryptMessageUseCase encryptmessage.UseCase,
	cleanSessionsUseCase cleansessions.UseCase,
) Container {
	return Container{
		CreateSession:       createSessionUseCase,
		GetSession:          getSessionUseCase,
		RemoveSession:       removeSessionUseCase,
		ConfigureMachine:    configureMachineUseCase,
		ResetMachine:        resetMachineUseCase,
		GenerateSettings:    generateSettingsUseCase,
		AddPlugboardPair:    addPlugboardPairUseCase,
		RemovePlugboardPair: removePlugboardPairUseCase,
		EncryptMessage:      encryptMessageUseCase,
		CleanSessions:       cleanSessionsUseCase,
	}
}

var Module = fx.Module("container",
	fx.Provide(createsession.New),
	fx.Provide(getsession.New),
	fx.Provide(removesession.New),
	fx.Provide(configuremachine.New),
	fx.Provide(resetmachine.New),
	fx.Provide(generatesettings.New),
	fx.Provide(addplugboardpair.New),
	fx.Provide(removeplugboardpair.New),
	fx.Provide(encryptmessage.New),
	fx.Provide(cleansessions.New),
	fx.Provide(New),
)
