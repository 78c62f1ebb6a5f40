package impl

import (
	"math"
	"strconv"
	"strings"
	"time"

	"chainsync/internal/domain/entity"
	syncerrors "chainsync/internal/domain/errors"
	"chainsync/internal/errors"
)

// Column headers of the portal's exports. The portal serves reports in
// Russian regardless of account locale; these literals are the data contract.
const (
	colClientPhone    = "№ телефона"
	colFirstOrderAt   = "Дата первого заказа"
	colFirstOrderCity = "Отдел первого заказа"
	colLastOrderAt    = "Дата последнего заказа"
	colLastOrderCity  = "Отдел последнего заказа"
	colFirstChannel   = "Направление первого заказа"
	colOrderCount     = "Количество заказов"
	colOrderSum       = "Сумма заказов"

	colOrderHeadUnit   = "Подразделение"
	colOrderDepartment = "Отдел"
	colOrderDate       = "Дата"
	colOrderNumber     = "№ заказа"
	colOrderType       = "Тип заказа"
	colOrderPhone      = "Номер телефона"
	colOrderAmount     = "Сумма заказа"
	colOrderStatus     = "Статус заказа"
)

// channelNames is the total mapping from the portal's order-direction text to
// the persisted ordinal. An unlisted value is schema drift and fails loudly.
var channelNames = map[string]entity.OrderChannel{
	"Доставка":  entity.ChannelDelivery,
	"Самовывоз": entity.ChannelPickup,
	"Ресторан":  entity.ChannelRestaurant,
}

// statusNames is the total mapping from the portal's order-status text to the
// persisted ordinal.
var statusNames = map[string]entity.OrderStatus{
	"Доставка":  entity.StatusDelivery,
	"Отказ":     entity.StatusRefused,
	"Просрочен": entity.StatusOverdue,
	"Упакован":  entity.StatusPacked,
	"В работе":  entity.StatusInProgress,
	"Принят":    entity.StatusAccepted,
	"Выполнен":  entity.StatusCompleted,
}

// reportTimeLayouts are the cell formats seen in portal workbooks, most
// specific first.
var reportTimeLayouts = []string{
	"02.01.2006 15:04:05",
	"02.01.2006 15:04",
	"02.01.2006",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// normalizeClients converts the clients-statistic payload into typed rows:
// channel text becomes its ordinal, timestamps move from unit-local time to
// UTC, and rows whose phone does not carry the national prefix are dropped.
func normalizeClients(table *entity.RawTable, unit *entity.Unit, window entity.SyncWindow, phonePrefix string) ([]entity.ClientRow, error) {
	if table.Empty() {
		return nil, syncerrors.NewEmptyResultError(entity.ReportClientsStatistic.String(), window.Start, window.End)
	}

	rows := make([]entity.ClientRow, 0, len(table.Rows))
	for _, raw := range table.Rows {
		phone := strings.TrimSpace(table.Cell(raw, colClientPhone))
		if !strings.HasPrefix(phone, phonePrefix) {
			continue
		}

		channel, ok := channelNames[strings.TrimSpace(table.Cell(raw, colFirstChannel))]
		if !ok {
			return nil, syncerrors.NewDataContractError(colFirstChannel, table.Cell(raw, colFirstChannel))
		}

		firstAt, err := parseReportTime(table.Cell(raw, colFirstOrderAt), unit.Location())
		if err != nil {
			return nil, errors.Wrapf(err, "parse %s", colFirstOrderAt)
		}
		lastAt, err := parseReportTime(table.Cell(raw, colLastOrderAt), unit.Location())
		if err != nil {
			return nil, errors.Wrapf(err, "parse %s", colLastOrderAt)
		}
		count, err := parseReportInt(table.Cell(raw, colOrderCount))
		if err != nil {
			return nil, errors.Wrapf(err, "parse %s", colOrderCount)
		}
		sum, err := parseReportFloat(table.Cell(raw, colOrderSum))
		if err != nil {
			return nil, errors.Wrapf(err, "parse %s", colOrderSum)
		}

		rows = append(rows, entity.ClientRow{
			Phone:             phone,
			FirstOrderAt:      firstAt,
			FirstOrderCity:    strings.TrimSpace(table.Cell(raw, colFirstOrderCity)),
			FirstOrderChannel: channel,
			LastOrderAt:       lastAt,
			LastOrderCity:     strings.TrimSpace(table.Cell(raw, colLastOrderCity)),
			OrderCount:        count,
			OrderSum:          sum,
		})
	}

	return rows, nil
}

// normalizeOrders converts the orders payload into typed rows, encoding both
// the order type and the order status.
func normalizeOrders(table *entity.RawTable, unit *entity.Unit, window entity.SyncWindow, phonePrefix string) ([]entity.OrderRow, error) {
	if table.Empty() {
		return nil, syncerrors.NewEmptyResultError(entity.ReportOrders.String(), window.Start, window.End)
	}

	rows := make([]entity.OrderRow, 0, len(table.Rows))
	for _, raw := range table.Rows {
		phone := strings.TrimSpace(table.Cell(raw, colOrderPhone))
		if !strings.HasPrefix(phone, phonePrefix) {
			continue
		}

		orderType, ok := channelNames[strings.TrimSpace(table.Cell(raw, colOrderType))]
		if !ok {
			return nil, syncerrors.NewDataContractError(colOrderType, table.Cell(raw, colOrderType))
		}
		status, ok := statusNames[strings.TrimSpace(table.Cell(raw, colOrderStatus))]
		if !ok {
			return nil, syncerrors.NewDataContractError(colOrderStatus, table.Cell(raw, colOrderStatus))
		}

		date, err := parseReportTime(table.Cell(raw, colOrderDate), unit.Location())
		if err != nil {
			return nil, errors.Wrapf(err, "parse %s", colOrderDate)
		}
		amount, err := parseReportFloat(table.Cell(raw, colOrderAmount))
		if err != nil {
			return nil, errors.Wrapf(err, "parse %s", colOrderAmount)
		}

		rows = append(rows, entity.OrderRow{
			HeadUnit:   strings.TrimSpace(table.Cell(raw, colOrderHeadUnit)),
			Department: strings.TrimSpace(table.Cell(raw, colOrderDepartment)),
			Date:       date,
			Number:     strings.TrimSpace(table.Cell(raw, colOrderNumber)),
			Type:       orderType,
			Status:     status,
			Phone:      phone,
			Amount:     amount,
		})
	}

	return rows, nil
}

// normalizePromo passes the promo usage payload through untyped; only the
// empty check applies.
func normalizePromo(table *entity.RawTable, window entity.SyncWindow) ([]entity.PromoRow, error) {
	if table.Empty() {
		return nil, syncerrors.NewEmptyResultError(entity.ReportPromoUsage.String(), window.Start, window.End)
	}

	rows := make([]entity.PromoRow, 0, len(table.Rows))
	for _, raw := range table.Rows {
		fields := make(map[string]string, len(table.Columns))
		for _, col := range table.Columns {
			fields[col] = table.Cell(raw, col)
		}
		rows = append(rows, entity.PromoRow{Fields: fields})
	}

	return rows, nil
}

// parseReportTime reads a workbook timestamp cell as unit-local time and
// converts it to UTC.
func parseReportTime(cell string, loc *time.Location) (time.Time, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return time.Time{}, errors.New("empty timestamp cell")
	}

	for _, layout := range reportTimeLayouts {
		if t, err := time.ParseInLocation(layout, cell, loc); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, errors.Errorf("unsupported timestamp format %q", cell)
}

// parseReportInt reads a workbook integer cell, tolerating a float rendering
// of a whole number ("5.0"). A fractional value in a count cell is malformed
// data, not something to truncate.
func parseReportInt(cell string) (int, error) {
	cell = cleanNumeric(cell)
	if n, err := strconv.Atoi(cell); err == nil {
		return n, nil
	}

	f, err := strconv.ParseFloat(cell, 64)
	if err != nil || f != math.Trunc(f) {
		return 0, errors.Errorf("malformed integer cell %q", cell)
	}

	return int(f), nil
}

// parseReportFloat reads a workbook numeric cell, tolerating the Russian
// decimal comma and grouping spaces.
func parseReportFloat(cell string) (float64, error) {
	f, err := strconv.ParseFloat(cleanNumeric(cell), 64)
	if err != nil {
		return 0, errors.Errorf("malformed numeric cell %q", cell)
	}

	return f, nil
}

func cleanNumeric(cell string) string {
	cell = strings.TrimSpace(cell)
	cell = strings.ReplaceAll(cell, " ", "")
	cell = strings.ReplaceAll(cell, " ", "")

	return strings.ReplaceAll(cell, ",", ".")
}
