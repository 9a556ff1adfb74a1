package analyticshdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "github.com/itkpf2018/webapp-KPF-sub005/internal/api/base/handler"
)

// HandleGetDashboard ตอบ dashboard วิเคราะห์การเข้างาน + ยอดขาย
// query param storeId ใส่ได้หรือไม่ใส่ก็ได้ — ว่าง = รวมทุกสาขา
func (h *AnalyticsHandler) HandleGetDashboard(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		storeID := c.Query("storeId")

		data, err := h.service.GetDashboard(c.Context(), storeID)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		basehdl.HandleResponse(c, data, nil)
		return nil
	})
}
