package server

import (
	"github.com/NeuralTrust/ClickGuard/pkg/config"
	"github.com/NeuralTrust/ClickGuard/pkg/server/router"
	"github.com/sirupsen/logrus"
)

type (
	APIServerDI struct {
		Config  *config.Config
		Logger  *logrus.Logger
		Routers []router.ServerRouter
	}
	APIServer struct {
		*BaseServer
	}
)

func NewAPIServer(di APIServerDI) (*APIServer, error) {
	s := &APIServer{BaseServer: NewBaseServer(di.Config, di.Logger)}
	if err := s.WithRouters(di.Routers...); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *APIServer) Run() error {
	return s.listen("api", s.Config.Server.APIPort)
}
