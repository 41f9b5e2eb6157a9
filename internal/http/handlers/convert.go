package handlers

import (
	"service-dispatch/internal/domain"
	"service-dispatch/internal/service/handover"
	"service-dispatch/internal/service/orders"
)

func (p partyDTO) toModel() domain.Party {
	out := domain.Party{
		Name:    p.Name,
		Phone:   p.Phone,
		Address: p.Address,
		City:    p.City,
		Country: p.Country,
	}
	if p.Geo != nil {
		out.Geo = &domain.GeoPoint{Lat: p.Geo.Lat, Lng: p.Geo.Lng}
	}
	return out
}

func (m moneyDTO) toModel() domain.Money {
	return domain.Money{Amount: m.Amount, Currency: m.Currency}
}

func (r createOrderRequest) toInput(actor string) orders.CreateInput {
	return orders.CreateInput{
		ID:            r.ID,
		Code:          r.Code,
		Barcode:       r.Barcode,
		Status:        domain.OrderStatus(r.Status),
		Sender:        r.Sender.toModel(),
		Recipient:     r.Recipient.toModel(),
		ProductValue:  r.ProductValue.toModel(),
		DeliveryFee:   r.DeliveryFee.toModel(),
		PaymentMethod: domain.PaymentMethod(r.PaymentMethod),
		WeightKg:      r.WeightKg,
		VolumeM3:      r.VolumeM3,
		Pieces:        r.Pieces,
		Tags:          r.Tags,
		CourierID:     r.CourierID,
		ScheduledDate: r.ScheduledDate,
		Actor:         actor,
	}
}

func (r patchOrderRequest) toModel() domain.OrderPatch {
	p := domain.OrderPatch{
		CourierID:     r.CourierID,
		ClearCourier:  r.ClearCourier,
		ScheduledDate: r.ScheduledDate,
		Tags:          r.Tags,
		WeightKg:      r.WeightKg,
		VolumeM3:      r.VolumeM3,
		Pieces:        r.Pieces,
	}
	if r.Status != nil {
		st := domain.OrderStatus(*r.Status)
		p.Status = &st
	}
	if r.PaymentMethod != nil {
		pm := domain.PaymentMethod(*r.PaymentMethod)
		p.PaymentMethod = &pm
	}
	if r.Sender != nil {
		s := r.Sender.toModel()
		p.Sender = &s
	}
	if r.Recipient != nil {
		s := r.Recipient.toModel()
		p.Recipient = &s
	}
	return p
}

func partyToResponse(p domain.Party) partyDTO {
	out := partyDTO{
		Name:    p.Name,
		Phone:   p.Phone,
		Address: p.Address,
		City:    p.City,
		Country: p.Country,
	}
	if p.Geo != nil {
		out.Geo = &geoDTO{Lat: p.Geo.Lat, Lng: p.Geo.Lng}
	}
	return out
}

func moneyToResponse(m domain.Money) moneyDTO {
	return moneyDTO{Amount: m.Amount, Currency: m.Currency}
}

func orderToResponse(o domain.Order) orderDTO {
	events := make([]eventDTO, 0, len(o.Events))
	for _, e := range o.Events {
		ev := eventDTO{At: e.At, Type: string(e.Type), Actor: e.Actor}
		if e.Status != nil {
			st := string(*e.Status)
			ev.Status = &st
		}
		events = append(events, ev)
	}
	tags := o.Tags
	if tags == nil {
		tags = []string{}
	}
	return orderDTO{
		ID:            o.ID,
		Code:          o.Code,
		Barcode:       o.Barcode,
		Status:        string(o.Status),
		SLARisk:       string(o.SLARisk),
		Sender:        partyToResponse(o.Sender),
		Recipient:     partyToResponse(o.Recipient),
		ProductValue:  moneyToResponse(o.ProductValue),
		DeliveryFee:   moneyToResponse(o.DeliveryFee),
		Total:         moneyToResponse(o.Total),
		PaymentMethod: string(o.PaymentMethod),
		WeightKg:      o.WeightKg,
		VolumeM3:      o.VolumeM3,
		Pieces:        o.Pieces,
		Tags:          tags,
		CourierID:     o.CourierID,
		ScheduledDate: o.ScheduledDate,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
		Events:        events,
	}
}

func pagedToResponse(p domain.Paged[domain.Order]) pagedOrdersDTO {
	items := make([]orderDTO, 0, len(p.Items))
	for _, o := range p.Items {
		items = append(items, orderToResponse(o))
	}
	return pagedOrdersDTO{Items: items, Page: p.Page, PageSize: p.PageSize, Total: p.Total}
}

func couriersToResponse(list []domain.Courier) []courierDTO {
	out := make([]courierDTO, 0, len(list))
	for _, c := range list {
		out = append(out, courierDTO{
			ID:      c.ID,
			Name:    c.Name,
			Phone:   c.Phone,
			Vehicle: string(c.Vehicle),
			Active:  c.Active,
		})
	}
	return out
}

func feedbackToResponse(f handover.Feedback) feedbackDTO {
	return feedbackDTO{
		OK:      f.OK,
		Code:    string(f.Code),
		Message: f.Message,
		Barcode: f.Barcode,
		OrderID: f.OrderID,
	}
}

func sessionToResponse(s handover.Session) sessionDTO {
	confirmed := make(map[string]struct{}, len(s.Confirmed))
	for _, id := range s.Confirmed {
		confirmed[id] = struct{}{}
	}
	planned := make([]plannedDTO, 0, len(s.Planned))
	for _, p := range s.Planned {
		_, ok := confirmed[p.OrderID]
		planned = append(planned, plannedDTO{OrderID: p.OrderID, Code: p.Code, Barcode: p.Barcode, Confirmed: ok})
	}
	out := sessionDTO{
		ID:        s.ID,
		State:     string(s.State),
		CourierID: s.CourierID,
		Planned:   planned,
		Confirmed: append([]string{}, s.Confirmed...),
		BagID:     s.BagID,
		UpdatedAt: s.UpdatedAt,
	}
	if s.Feedback != nil {
		fb := feedbackToResponse(*s.Feedback)
		out.Feedback = &fb
	}
	return out
}

func bagToResponse(b domain.Bag) bagDTO {
	return bagDTO{
		ID:        b.ID,
		Number:    b.Number,
		CourierID: b.CourierID,
		OrderIDs:  append([]string{}, b.OrderIDs...),
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt,
	}
}

func bagsToResponse(list []domain.Bag) []bagDTO {
	out := make([]bagDTO, 0, len(list))
	for _, b := range list {
		out = append(out, bagToResponse(b))
	}
	return out
}
