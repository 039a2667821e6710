// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-portal/internal/config"
	"github.com/MKhiriev/go-portal/internal/logger"
	"github.com/MKhiriev/go-portal/internal/store"
)

// Services groups the services bound to one open database.
type Services struct {
	AccountService AccountService
	ContentService ContentService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) (*Services, error) {
	hasher, err := NewCredentialHasher(cfg)
	if err != nil {
		return nil, err
	}

	return &Services{
		AccountService: NewAccountService(storages.Users, hasher, logger),
		ContentService: NewContentValidationService().Wrap(NewContentService(storages, logger)),
	}, nil
}
