package theme

const (
	PaddingXS = float32(6)
	PaddingS  = float32(10)
	PaddingM  = float32(16)
	PaddingL  = float32(22)

	CornerRadius   = float32(0.12)
	CornerSegments = int32(8)

	BorderWidth      = float32(1.2)
	BorderWidthFocus = float32(2.0)
	RowHeight        = float32(30)
	SlotSize         = float32(72)
	AccentStripWidth = float32(4)
)

type PanelVariant int

const (
	PanelStandard PanelVariant = iota
	PanelLifted
	PanelMuted
)

type SlotState int

const (
	SlotNormal SlotState = iota
	SlotHovered
	SlotWanted
	SlotDisabled
)

type RowTone int

const (
	RowNeutral RowTone = iota
	RowIncome
	RowExpense
)
