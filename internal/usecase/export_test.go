package usecase

import "time"

// SetClock fixes the time seen by every component of the importer.
func (im *Importer) SetClock(now func() time.Time) {
	im.result.now = now
	im.mandates.now = now
	im.mandates.fraud.now = now
	im.activities.now = now
}

// SetClock fixes the time seen by the extractor.
func (m *MandateExtractor) SetClock(now func() time.Time) {
	m.now = now
}
