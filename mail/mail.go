// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2024 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//   This file is part of CNC-RSTAT.
//
//  CNC-RSTAT is free software: you can redistribute it and/or modify
//  it under the terms of the GNU General Public License as published by
//  the Free Software Foundation, either version 3 of the License, or
//  (at your option) any later version.
//
//  CNC-RSTAT is distributed in the hope that it will be useful,
//  but WITHOUT ANY WARRANTY; without even the implied warranty of
//  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//  GNU General Public License for more details.
//
//  You should have received a copy of the GNU General Public License
//  along with CNC-RSTAT.  If not, see <https://www.gnu.org/licenses/>.

package mail

import (
	"bytes"
	"fmt"
	"net/smtp"
	"strings"
)

// EmailNotification configures e-mail-based notifications
// (job failures etc.)
type EmailNotification struct {
	SMTPServer         string   `json:"smtpServer"`
	Sender             string   `json:"sender"`
	NotificationEmails []string `json:"notificationEmails"`
}

func (enConf EmailNotification) IsConfigured() bool {
	return enConf.SMTPServer != "" && len(enConf.NotificationEmails) > 0
}

// SendNotification sends a general e-mail notification to all the
// configured recipients. The 'message' argument is expected to be
// a plain text - it will be wrapped in a simple HTML body.
func SendNotification(conf *EmailNotification, subject, message string) error {
	client, err := smtp.Dial(conf.SMTPServer)
	if err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}
	defer client.Close()

	if err := client.Mail(conf.Sender); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}
	for _, rcpt := range conf.NotificationEmails {
		if err := client.Rcpt(rcpt); err != nil {
			return fmt.Errorf("failed to send notification: %w", err)
		}
	}

	wc, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}
	defer wc.Close()

	headers := make(map[string]string)
	headers["From"] = conf.Sender
	headers["To"] = strings.Join(conf.NotificationEmails, ",")
	headers["Subject"] = subject
	headers["MIME-Version"] = "1.0"
	headers["Content-Type"] = "text/html; charset=UTF-8"

	body := ""
	for k, v := range headers {
		body += fmt.Sprintf("%s: %s\r\n", k, v)
	}
	body += "<p>" + message + "</p>\r\n\r\n"

	buf := bytes.NewBufferString(body)
	_, err = buf.WriteTo(wc)
	return err
}
