package http

import (
	"dentallab/internal/adapters/in/http/servers"
	"dentallab/internal/core/application/usecases/commands"
	"dentallab/internal/core/application/usecases/queries"
	"dentallab/internal/core/domain/model/stage"
)

func orderFromView(v queries.OrderView) servers.Order {
	items := make([]servers.OrderItem, 0, len(v.Items))
	for _, it := range v.Items {
		items = append(items, servers.OrderItem{
			Id:        it.ID,
			ProductId: it.Product.ID,
			Product: servers.Product{
				Id:          it.Product.ID,
				Name:        it.Product.Name,
				Description: it.Product.Description,
				CostPrice:   it.Product.CostPrice.Float64(),
				CategoryId:  it.Product.CategoryID,
			},
			TeethPositionId: it.TeethPosition.ID,
			TeethPosition: servers.TeethPosition{
				Id:           it.TeethPosition.ID,
				ToothArch:    it.TeethPosition.ToothArch,
				PositionName: it.TeethPosition.PositionName,
				Description:  it.TeethPosition.Description,
			},
			SellingPrice:    it.SellingPrice.InexactFloat64(),
			Quantity:        it.Quantity,
			TotalAmount:     it.TotalAmount.InexactFloat64(),
			Note:            it.Note,
		})
	}

	return servers.Order{
		Id:               v.ID,
		InvoiceId:        v.InvoiceID,
		DentalClinicId:   v.DentalClinicID,
		DentalClinicName: v.DentalClinicName,
		DentistName:      v.DentistName,
		DentistNote:      v.DentistNote,
		PatientName:      v.PatientName,
		PatientGender:    v.PatientGender,
		Status:           v.Status,
		Mode:             v.Mode,
		TeethQuantity:    v.TeethQuantity,
		TotalAmount:      v.TotalAmount.InexactFloat64(),
		Discount:         v.Discount.InexactFloat64(),
		FinalAmount:      v.FinalAmount.InexactFloat64(),
		CreatedDate:      v.CreatedDate,
		UpdatedBy:        v.UpdatedBy,
		UpdatedByName:    v.UpdatedByName,
		UpdatedAt:        v.UpdatedAt,
		StatusNote:       v.StatusNote,
		Items:            items,
	}
}

// orderFromAggregate renders a freshly created order without the joined
// product and tooth names.
func orderFromAggregate(res commands.CreateOrderCommandResponse) servers.Order {
	o := res.Order
	items := make([]servers.OrderItem, 0, len(o.Items()))
	for _, it := range o.Items() {
		items = append(items, servers.OrderItem{
			Id:              it.ID(),
			ProductId:       it.ProductID(),
			Product:         servers.Product{Id: it.ProductID()},
			TeethPositionId: it.TeethPositionID(),
			TeethPosition:   servers.TeethPosition{Id: it.TeethPositionID()},
			SellingPrice:    it.SellingPrice().Float64(),
			Quantity:        it.Quantity(),
			TotalAmount:     it.TotalAmount().Float64(),
			Note:            it.Note(),
		})
	}

	return servers.Order{
		Id:               o.ID(),
		InvoiceId:        o.InvoiceID().String(),
		DentalClinicId:   o.DentalClinicID(),
		DentalClinicName: res.DentalClinic.Name,
		DentistName:      o.DentistName(),
		DentistNote:      o.DentistNote(),
		PatientName:      o.PatientName(),
		PatientGender:    o.PatientGender().String(),
		Status:           o.Status().String(),
		Mode:             o.Mode().String(),
		TeethQuantity:    o.TeethQuantity(),
		TotalAmount:      o.TotalAmount().Float64(),
		Discount:         o.Discount().Float64(),
		FinalAmount:      o.FinalAmount().Float64(),
		CreatedDate:      o.CreatedDate(),
		UpdatedBy:        o.UpdatedBy(),
		UpdatedAt:        o.UpdatedAt(),
		StatusNote:       o.StatusNote(),
		Items:            items,
	}
}

func stageFromView(v queries.StageView) servers.Stage {
	return servers.Stage{
		Id:            v.ID,
		OrderItemId:   v.OrderItemID,
		IndexStage:    v.IndexStage,
		StaffId:       v.StaffID,
		StaffName:     v.StaffName,
		StageName:     v.StageName,
		Description:   v.Description,
		ExecutionTime: v.ExecutionTime.Hours(),
		Status:        v.Status,
		StartDate:     v.StartDate,
		EndDate:       v.EndDate,
		Note:          v.Note,
		Image:         v.Image,
	}
}

func stageFromAggregate(st *stage.Stage) servers.Stage {
	return servers.Stage{
		Id:            st.ID(),
		OrderItemId:   st.OrderItemID(),
		IndexStage:    st.Index(),
		StaffId:       st.StaffID(),
		StageName:     st.Name(),
		Description:   st.Description(),
		ExecutionTime: st.ExecutionTime().Hours(),
		Status:        st.Status().String(),
		StartDate:     st.StartDate(),
		EndDate:       st.EndDate(),
		Note:          st.Note(),
		Image:         st.Image(),
	}
}
