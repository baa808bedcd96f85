package serviceImp

import (
	boarRepo "herdbook/pkg/boar/repository"
	"herdbook/pkg/boar/service"
	farmRepo "herdbook/pkg/farm/repository"
	lineRepo "herdbook/pkg/line/repository"
)

type boarService struct {
	boars boarRepo.BoarRepository
	lines lineRepo.LineRepository
	farms farmRepo.FarmRepository
}

func New(
	boars boarRepo.BoarRepository,
	lines lineRepo.LineRepository,
	farms farmRepo.FarmRepository,
) service.BoarService {
	return &boarService{boars: boars, lines: lines, farms: farms}
}
