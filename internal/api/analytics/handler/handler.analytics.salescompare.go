package analyticshdl

import (
	"strconv"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/itkpf2018/webapp-KPF-sub005/internal/api/base/handler"
	"github.com/itkpf2018/webapp-KPF-sub005/internal/api/analytics/dto"
	"github.com/itkpf2018/webapp-KPF-sub005/internal/common"
	"github.com/itkpf2018/webapp-KPF-sub005/internal/global"
)

// HandleGetSalesComparison ตอบรายงานเปรียบเทียบยอดขายรายเดือนต่อสินค้า
// บังคับ employeeId กับ year, ส่วน storeId/startMonth/endMonth ใส่หรือไม่ก็ได้
// เดือนไม่ระบุ = เต็มปี (1-12)
func (h *AnalyticsHandler) HandleGetSalesComparison(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		query, err := parseComparisonQuery(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		report, err := h.service.GetSalesComparison(c.Context(), query)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		basehdl.HandleResponse(c, report, nil)
		return nil
	})
}

// parseComparisonQuery อ่านและตรวจ query string ของรายงานเปรียบเทียบ
func parseComparisonQuery(c fiber.Ctx) (dto.SalesComparisonQuery, error) {
	query := dto.SalesComparisonQuery{
		EmployeeID: c.Query("employeeId"),
		StoreID:    c.Query("storeId"),
		StartMonth: 1,
		EndMonth:   12,
	}

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		return query, common.NewError(common.ErrCodeValidationInput,
			"year ต้องเป็นตัวเลข", common.StatusBadRequest, nil)
	}
	query.Year = year

	if raw := c.Query("startMonth"); raw != "" {
		month, err := strconv.Atoi(raw)
		if err != nil {
			return query, common.NewError(common.ErrCodeValidationInput,
				"startMonth ต้องเป็นตัวเลข 1-12", common.StatusBadRequest, nil)
		}
		query.StartMonth = month
	}
	if raw := c.Query("endMonth"); raw != "" {
		month, err := strconv.Atoi(raw)
		if err != nil {
			return query, common.NewError(common.ErrCodeValidationInput,
				"endMonth ต้องเป็นตัวเลข 1-12", common.StatusBadRequest, nil)
		}
		query.EndMonth = month
	}

	if err := global.Validate.Struct(query); err != nil {
		return query, common.NewError(common.ErrCodeValidationInput,
			common.MsgValidationError, common.StatusBadRequest, err.Error())
	}
	return query, nil
}
