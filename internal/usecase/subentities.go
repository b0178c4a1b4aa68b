package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"streetimport/internal/domain"
	"streetimport/internal/normalize"
)

// AttachSubentities adds the record's address, phones and email to the
// contact unless an identical one is already stored. A store failure skips
// that entity only.
func (d *DonorReconciler) AttachSubentities(ctx context.Context, rec domain.Record, contactID int64) {
	d.attachAddress(ctx, rec, contactID)
	d.attachPhones(ctx, rec, contactID)
	d.attachEmail(ctx, rec, contactID)
}

func (d *DonorReconciler) countryID(ctx context.Context, rec domain.Record) int {
	iso := normalize.CountryISO(rec.Get(domain.ColCountry))
	if iso == "" {
		return d.cfg.Import.DefaultCountryID
	}
	countryID, err := d.locations.CountryIDByISO(ctx, iso)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			d.result.Warn(rec.ID(), fmt.Sprintf("Country lookup for %s failed, default country used: %v", iso, err))
		}
		return d.cfg.Import.DefaultCountryID
	}
	return countryID
}

func (d *DonorReconciler) attachAddress(ctx context.Context, rec domain.Record, contactID int64) {
	id := rec.ID()
	streetName := rec.Get(domain.ColStreetName)
	postalCode := rec.Get(domain.ColPostalCode)
	city := rec.Get(domain.ColCity)
	if streetName == "" && postalCode == "" && city == "" {
		return
	}

	streetNumber := rec.Int(domain.ColStreetNumber)
	streetUnit := rec.Get(domain.ColStreetUnit)
	address := domain.Address{
		ContactID:      contactID,
		LocationTypeID: d.cfg.Import.Locations.Default,
		StreetName:     streetName,
		StreetNumber:   streetNumber,
		StreetUnit:     streetUnit,
		StreetAddress:  normalize.StreetAddress(streetName, streetNumber, streetUnit),
		PostalCode:     postalCode,
		City:           city,
		CountryID:      d.countryID(ctx, rec),
		IsPrimary:      true,
	}

	count, err := d.locations.CountAddresses(ctx, address)
	if err != nil {
		d.result.Error(ctx, id, "Create Address Error", fmt.Sprintf("Could not check addresses of contact %d: %v", contactID, err))
		return
	}
	if count > 0 {
		d.result.Debug(id, fmt.Sprintf("Contact %d already has address %s", contactID, address.StreetAddress))
		return
	}
	if err := d.locations.CreateAddress(ctx, address); err != nil {
		d.result.Error(ctx, id, "Create Address Error", fmt.Sprintf("Could not create address for contact %d: %v", contactID, err))
		return
	}
	d.result.Debug(id, fmt.Sprintf("Address %s created for contact %d", address.StreetAddress, contactID))
}

func (d *DonorReconciler) attachPhones(ctx context.Context, rec domain.Record, contactID int64) {
	loc := d.cfg.Import.Locations
	phones := []struct {
		column       string
		phoneTypeID  int
		locationType int
	}{
		{domain.ColTelephone1, loc.PhoneType, loc.Default},
		{domain.ColTelephone2, loc.PhoneType, loc.Other},
		{domain.ColMobile1, loc.MobileType, loc.Default},
		{domain.ColMobile2, loc.MobileType, loc.Other},
	}
	for _, p := range phones {
		raw := rec.Get(p.column)
		numeric := normalize.PhoneNumeric(raw)
		if numeric == "" {
			continue
		}
		locationType := p.locationType
		if locationType == 0 {
			locationType = loc.Default
		}
		d.attachPhone(ctx, rec.ID(), domain.Phone{
			ContactID:      contactID,
			LocationTypeID: locationType,
			PhoneTypeID:    p.phoneTypeID,
			Phone:          raw,
			PhoneNumeric:   numeric,
		})
	}
}

func (d *DonorReconciler) attachPhone(ctx context.Context, recordID string, phone domain.Phone) {
	count, err := d.locations.CountPhones(ctx, phone.ContactID, phone.PhoneNumeric)
	if err != nil {
		d.result.Error(ctx, recordID, "Create Phone Error", fmt.Sprintf("Could not check phones of contact %d: %v", phone.ContactID, err))
		return
	}
	if count > 0 {
		return
	}
	if err := d.locations.CreatePhone(ctx, phone); err != nil {
		d.result.Error(ctx, recordID, "Create Phone Error", fmt.Sprintf("Could not create phone %s for contact %d: %v", phone.Phone, phone.ContactID, err))
	}
}

func (d *DonorReconciler) attachEmail(ctx context.Context, rec domain.Record, contactID int64) {
	id := rec.ID()
	email := rec.Get(domain.ColEmail)
	if email == "" {
		return
	}
	if d.fakeEmail != nil && d.fakeEmail.IsFake(email) {
		d.result.Debug(id, fmt.Sprintf("Email %s looks like a placeholder, not stored", email))
		return
	}

	count, err := d.locations.CountEmails(ctx, contactID, email)
	if err != nil {
		d.result.Error(ctx, id, "Create Email Error", fmt.Sprintf("Could not check emails of contact %d: %v", contactID, err))
		return
	}
	if count > 0 {
		return
	}
	err = d.locations.CreateEmail(ctx, domain.Email{
		ContactID:      contactID,
		LocationTypeID: d.cfg.Import.Locations.Default,
		Email:          email,
	})
	if err != nil {
		d.result.Error(ctx, id, "Create Email Error", fmt.Sprintf("Could not create email %s for contact %d: %v", email, contactID, err))
	}
}

func equalFoldTrim(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
