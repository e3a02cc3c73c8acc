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

package jobs

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/message"

	"rstat/v2/mail"
)

// notifyJobFinished sends an e-mail notification about a failed job.
// Successfully finished jobs are kept quiet - the job table is the
// place to review those.
func (a *Actions) notifyJobFinished(info GeneralJobInfo) {
	if info.GetError() == nil || !a.conf.EmailNotification.IsConfigured() {
		return
	}
	printer := message.NewPrinter(a.lang)
	subject := printer.Sprintf("CNC-RSTAT job failed: %s", extractJobDescription(printer, info))
	msg := fmt.Sprintf(
		"%s<br />job: %s<br />corpus: %s<br />%s",
		extractJobDescription(printer, info),
		info.GetID(),
		info.GetCorpus(),
		localizedStatus(printer, info),
	)
	if err := mail.SendNotification(&a.conf.EmailNotification, subject, msg); err != nil {
		log.Error().Err(err).Msg("Failed to send e-mail notification")
	}
}
