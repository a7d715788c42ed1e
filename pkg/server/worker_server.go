package server

import (
	"github.com/NeuralTrust/ClickGuard/pkg/config"
	"github.com/NeuralTrust/ClickGuard/pkg/server/router"
	"github.com/sirupsen/logrus"
)

type (
	WorkerServerDI struct {
		Config  *config.Config
		Logger  *logrus.Logger
		Routers []router.ServerRouter
	}
	// WorkerServer exposes liveness for the enforcement role. It takes no
	// click traffic.
	WorkerServer struct {
		*BaseServer
	}
)

func NewWorkerServer(di WorkerServerDI) (*WorkerServer, error) {
	s := &WorkerServer{BaseServer: NewBaseServer(di.Config, di.Logger)}
	if err := s.WithRouters(di.Routers...); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *WorkerServer) Run() error {
	return s.listen("worker", s.Config.Server.WorkerPort)
}
