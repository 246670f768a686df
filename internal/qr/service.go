// Copyright (c) 2026 WSO2 LLC. (https://www.wso2.com).
//
// WSO2 LLC. licenses this file to you under the Apache License,
// Version 2.0 (the "License"); you may not use this file except
// in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

// Package qr generates the QR codes previewed by the print-safety simulation.
package qr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"
)

var (
	ErrEmptyData   = errors.New("data cannot be empty")
	ErrInvalidSize = errors.New("invalid size")
	ErrDataTooLong = errors.New("data too long to encode")
)

type Service interface {
	// Generate returns a PNG QR code.
	Generate(data []byte, size int) ([]byte, error)
	// GenerateSVG returns QR code SVG markup scaled to size pixels.
	GenerateSVG(data []byte, size int) (string, error)
}

type service struct {
	logger  *zap.Logger
	minSize int
	maxSize int
}

// NewService creates a new QR code generation service instance.
func NewService(logger *zap.Logger, minSize, maxSize int) Service {
	return &service{
		logger:  logger,
		minSize: minSize,
		maxSize: maxSize,
	}
}

// Generate creates a QR code PNG image from the provided data with Medium error recovery (15%).
func (s *service) Generate(data []byte, size int) ([]byte, error) {
	s.logger.Debug("Starting QR code generation",
		zap.Int("data_length", len(data)),
		zap.Int("size", size),
	)

	if err := s.validate(data, size); err != nil {
		return nil, err
	}

	code, err := s.encode(data)
	if err != nil {
		return nil, err
	}

	png, err := code.PNG(size)
	if err != nil {
		s.logger.Error("Failed to render QR code PNG",
			zap.Error(err),
			zap.Int("data_length", len(data)),
			zap.Int("size", size),
		)
		return nil, fmt.Errorf("failed to render QR code: %w", err)
	}

	s.logger.Debug("QR code generated successfully",
		zap.Int("output_size_bytes", len(png)),
		zap.String("image_dimensions", fmt.Sprintf("%dx%d", size, size)),
	)

	return png, nil
}

// GenerateSVG renders the QR code as one path of unit squares in module
// coordinates, including the quiet zone.
func (s *service) GenerateSVG(data []byte, size int) (string, error) {
	if err := s.validate(data, size); err != nil {
		return "", err
	}

	code, err := s.encode(data)
	if err != nil {
		return "", err
	}

	bitmap := code.Bitmap()
	n := len(bitmap)
	if n == 0 {
		return "", fmt.Errorf("failed to encode QR code: empty bitmap")
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d" shape-rendering="crispEdges">`, n, n, size, size)
	fmt.Fprintf(&sb, `<rect width="%d" height="%d" fill="#fff"/>`, n, n)
	sb.WriteString(`<path fill="#000" d="`)
	for y, row := range bitmap {
		for x, black := range row {
			if black {
				fmt.Fprintf(&sb, "M%d %dh1v1h-1z", x, y)
			}
		}
	}
	sb.WriteString(`"/></svg>`)

	s.logger.Debug("QR code SVG generated",
		zap.Int("modules", n),
		zap.Int("markup_length", sb.Len()),
	)

	return sb.String(), nil
}

// encode builds the QR code with Medium error recovery (15%). Data is already
// known to be non-empty, so the only encoder failure left is content that
// exceeds the largest QR version.
func (s *service) encode(data []byte) (*qrcode.QRCode, error) {
	code, err := qrcode.New(string(data), qrcode.Medium)
	if err != nil {
		s.logger.Warn("QR code generation failed: data does not fit",
			zap.Error(err),
			zap.Int("data_length", len(data)),
		)
		return nil, fmt.Errorf("%w: %v", ErrDataTooLong, err)
	}
	return code, nil
}

func (s *service) validate(data []byte, size int) error {
	if len(data) == 0 {
		s.logger.Warn("QR code generation failed: empty data provided")
		return ErrEmptyData
	}

	if size < s.minSize || size > s.maxSize {
		s.logger.Warn("QR code generation failed: invalid size",
			zap.Int("size", size),
			zap.Int("min", s.minSize),
			zap.Int("max", s.maxSize),
		)
		return fmt.Errorf("%w: must be between %d and %d", ErrInvalidSize, s.minSize, s.maxSize)
	}
	return nil
}
