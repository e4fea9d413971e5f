// Package services – EnvironmentService
//
// Reports which deployment environment the service is running in, mostly so
// the frontend can badge non-production instances.
package services

import "os"

// EnvironmentInfo describes the running deployment.
type EnvironmentInfo struct {
	Environment string `json:"environment"`
	Hostname    string `json:"hostname"`
}

// EnvironmentService exposes the configured environment name.
type EnvironmentService struct {
	Name string
}

// Details returns the environment name and the host the process runs on.
func (s *EnvironmentService) Details() EnvironmentInfo {
	host, _ := os.Hostname()
	return EnvironmentInfo{Environment: s.Name, Hostname: host}
}
