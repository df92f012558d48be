// Copyright (c) 2026, Netgrid Labs.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package mailer delivers the generated report workbook over SMTP.
// Delivery is best effort and optional: it only runs when the tenant
// configuration carries an SMTP block.
package mailer

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/smtp"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/netgrid-labs/fleetwatch/pkg/config"
)

const attachmentContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Mailer sends report workbooks per tenant SMTP configuration.
type Mailer struct {
	cfg    *config.SMTP
	tenant string
}

// New creates a Mailer for one tenant. Returns an error when the SMTP
// configuration is missing or incomplete.
func New(cfg *config.SMTP, tenant string) (*Mailer, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("smtp configuration is incomplete")
	}
	return &Mailer{cfg: cfg, tenant: tenant}, nil
}

// SendReport emails the workbook at path as an attachment.
func (m *Mailer) SendReport(path string) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading report %s: %w", path, err)
	}

	subject := m.cfg.Subject
	if subject == "" {
		subject = fmt.Sprintf("Network firmware report - %s (%s)",
			m.tenant, time.Now().Format("2006-01-02"))
	}

	msg, err := buildMessage(m.cfg, subject, filepath.Base(path), payload)
	if err != nil {
		return fmt.Errorf("building message: %w", err)
	}

	addr := fmt.Sprintf("%s:%d", m.cfg.Server, m.cfg.Port)
	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Server)
	}

	recipients := append(append([]string{}, m.cfg.To...), m.cfg.Cc...)
	if err := smtp.SendMail(addr, auth, sender(m.cfg), recipients, msg); err != nil {
		return fmt.Errorf("sending report via %s: %w", addr, err)
	}

	slog.Info("report emailed",
		slog.String("server", addr),
		slog.Int("recipients", len(recipients)),
		slog.String("attachment", filepath.Base(path)),
	)
	return nil
}

func sender(cfg *config.SMTP) string {
	if cfg.From != "" {
		return cfg.From
	}
	return cfg.Username
}

// buildMessage renders a multipart MIME message with a short text body and
// the workbook as a base64 attachment.
func buildMessage(cfg *config.SMTP, subject, filename string, payload []byte) ([]byte, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fmt.Fprintf(&buf, "From: %s\r\n", sender(cfg))
	fmt.Fprintf(&buf, "To: %s\r\n", strings.Join(cfg.To, ", "))
	if len(cfg.Cc) > 0 {
		fmt.Fprintf(&buf, "Cc: %s\r\n", strings.Join(cfg.Cc, ", "))
	}
	fmt.Fprintf(&buf, "Subject: %s\r\n", subject)
	fmt.Fprintf(&buf, "MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/mixed; boundary=%q\r\n\r\n", mw.Boundary())

	body, err := mw.CreatePart(textproto.MIMEHeader{
		"Content-Type": {"text/plain; charset=utf-8"},
	})
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(body, "Attached: %s\r\n", filename)

	attachment, err := mw.CreatePart(textproto.MIMEHeader{
		"Content-Type":              {fmt.Sprintf("%s; name=%q", attachmentContentType, filename)},
		"Content-Disposition":       {fmt.Sprintf("attachment; filename=%q", filename)},
		"Content-Transfer-Encoding": {"base64"},
	})
	if err != nil {
		return nil, err
	}

	encoded := base64.StdEncoding.EncodeToString(payload)
	for len(encoded) > 0 {
		n := 76
		if n > len(encoded) {
			n = len(encoded)
		}
		if _, err := fmt.Fprintf(attachment, "%s\r\n", encoded[:n]); err != nil {
			return nil, err
		}
		encoded = encoded[n:]
	}

	if err := mw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
