package service

import (
	"go-kasir-toko/internal/repository"
)

type DashboardService interface {
	GetDashboardStats() (*repository.DashboardStats, error)
}

type dashboardService struct {
	transaksiRepo repository.TransaksiRepository
}

func NewDashboardService(tRepo repository.TransaksiRepository) DashboardService {
	return &dashboardService{transaksiRepo: tRepo}
}

func (s *dashboardService) GetDashboardStats() (*repository.DashboardStats, error) {
	return s.transaksiRepo.GetDashboardStats()
}
