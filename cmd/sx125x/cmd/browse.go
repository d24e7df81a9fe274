package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	ui "github.com/gizak/termui/v3"
	widgets "github.com/gizak/termui/v3/widgets"
	"github.com/spf13/cobra"

	"github.com/rfkit/sx125x/pkg/config"
	"github.com/rfkit/sx125x/pkg/registers"
)

var browseVariant string

var browseCmd = &cobra.Command{
	Use:   "browse [config.json]",
	Short: "Browse a register map interactively",
	Long: `Open an interactive register browser for a saved configuration, or for
the power-on defaults when no file is given.

Keys:
  Up/Down, k/j   select register
  v              toggle IC variant
  q, ESC         quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)

	browseCmd.Flags().StringVar(&browseVariant, "variant", "",
		"IC variant override (sx1255 or sx1257)")
}

type browserState struct {
	cfg      *config.DeviceConfig
	selected int

	terminalWidth  int
	terminalHeight int

	listView   *widgets.List
	detailView *widgets.Paragraph
	frameView  *widgets.Paragraph
	helpView   *widgets.Paragraph
}

var paneTitleStyle = ui.NewStyle(ui.ColorCyan)

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg := config.NewDeviceConfig("defaults", registers.SX1255)
	if len(args) == 1 {
		loaded, err := config.LoadFromFile(resolveConfigPath(args[0]))
		if err != nil {
			return err
		}
		cfg = loaded
	}

	if browseVariant != "" {
		v, err := registers.ParseVariant(browseVariant)
		if err != nil {
			return err
		}
		cfg.Variant = v
	}

	if err := ui.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal UI: %w", err)
	}
	defer ui.Close()

	b := &browserState{cfg: cfg}
	b.terminalWidth, b.terminalHeight = ui.TerminalDimensions()
	b.draw()

	for e := range ui.PollEvents() {
		switch e.ID {
		case "q", "<C-c>", "<Escape>":
			return nil
		case "<Down>", "j":
			if b.selected < len(registers.Layout())-1 {
				b.selected++
			}
		case "<Up>", "k":
			if b.selected > 0 {
				b.selected--
			}
		case "v":
			if b.cfg.Variant == registers.SX1255 {
				b.cfg.Variant = registers.SX1257
			} else {
				b.cfg.Variant = registers.SX1255
			}
		case "<Resize>":
			b.terminalWidth, b.terminalHeight = ui.TerminalDimensions()
		default:
			continue
		}
		b.draw()
	}

	return nil
}

func (b *browserState) draw() {
	b.updateListView()
	b.updateDetailView()
	b.updateFrameView()
	b.updateHelpView()

	ui.Render(b.listView, b.detailView, b.frameView, b.helpView)
}

func (b *browserState) updateListView() {
	list := widgets.NewList()
	list.Title = fmt.Sprintf("  Registers (%s)  ", b.cfg.Variant)
	list.TitleStyle = paneTitleStyle
	list.SelectedRowStyle = ui.NewStyle(ui.ColorBlack, ui.ColorCyan)

	for _, info := range registers.Layout() {
		row := fmt.Sprintf("0x%02X  %s", info.Addr, info.Name)
		if !info.Includes(b.cfg.Variant) {
			row += " [(n/a)](fg:red)"
		}
		list.Rows = append(list.Rows, row)
	}
	list.SelectedRow = b.selected

	list.SetRect(0, 0, 30, b.terminalHeight-8)
	b.listView = list
}

func (b *browserState) updateDetailView() {
	info := registers.Layout()[b.selected]

	var sb strings.Builder
	fmt.Fprintf(&sb, "[Address:](fg:cyan) 0x%02X    [Size:](fg:cyan) %d byte(s)\n", info.Addr, info.Size)
	if info.Only != "" {
		fmt.Fprintf(&sb, "[Variant:](fg:cyan) %s only\n", info.Only)
	} else {
		fmt.Fprintf(&sb, "[Variant:](fg:cyan) both\n")
	}

	if info.Includes(b.cfg.Variant) {
		if frame, err := b.cfg.Frame(); err == nil {
			parts := make([]string, 0, info.Size)
			for _, by := range frame[info.Addr : int(info.Addr)+info.Size] {
				parts = append(parts, fmt.Sprintf("%02X", by))
			}
			fmt.Fprintf(&sb, "[Encoded:](fg:cyan) %s\n", strings.Join(parts, " "))
		}
	} else {
		sb.WriteString("[Not encoded for this variant, bytes zero-filled.](fg:red)\n")
	}

	sb.WriteString("\n[Fields:](fg:cyan)\n")
	if data, err := json.MarshalIndent(b.selectedRegister(), "", "  "); err == nil {
		sb.Write(data)
	}

	detail := widgets.NewParagraph()
	detail.Title = fmt.Sprintf("  %s  ", info.Name)
	detail.TitleStyle = paneTitleStyle
	detail.Text = sb.String()
	detail.SetRect(30, 0, b.terminalWidth, b.terminalHeight-8)
	b.detailView = detail
}

func (b *browserState) selectedRegister() interface{} {
	m := b.cfg.Registers
	switch registers.Layout()[b.selected].Addr {
	case registers.RegMode:
		return &m.Mode
	case registers.RegFrfRx:
		return &m.RxFrequency
	case registers.RegFrfTx:
		return &m.TxFrequency
	case registers.RegVersion:
		return struct {
			Value uint8 `json:"value"`
		}{m.Version}
	case registers.RegTxGain:
		return &m.TxGain
	case registers.RegTxTank:
		return &m.TxTank
	case registers.RegTxBw:
		return &m.TxBw
	case registers.RegTxDacBw:
		return &m.TxDacBw
	case registers.RegRxFrontend:
		return &m.RxFrontend
	case registers.RegIoMap:
		return &m.IoMap
	case registers.RegClockSelect:
		return &m.ClockSelect
	case registers.RegStatus:
		return &m.Status
	case registers.RegIism:
		return &m.Iism
	case registers.RegDigBridge:
		return &m.DigBridge
	case registers.RegLowBat:
		return &m.LowBat
	}
	return nil
}

func (b *browserState) updateFrameView() {
	para := widgets.NewParagraph()
	para.Title = "  Register Frame  "
	para.TitleStyle = paneTitleStyle

	frame, err := b.cfg.Frame()
	if err != nil {
		para.Text = fmt.Sprintf("[%v](fg:red)", err)
	} else {
		info := registers.Layout()[b.selected]
		var sb strings.Builder
		for base := 0; base < len(frame); base += 8 {
			end := base + 8
			if end > len(frame) {
				end = len(frame)
			}
			fmt.Fprintf(&sb, "0x%02X:", base)
			for i := base; i < end; i++ {
				cell := fmt.Sprintf("%02X", frame[i])
				if i >= int(info.Addr) && i < int(info.Addr)+info.Size {
					fmt.Fprintf(&sb, " [%s](fg:black,bg:cyan)", cell)
				} else {
					sb.WriteString(" " + cell)
				}
			}
			sb.WriteByte('\n')
		}
		para.Text = sb.String()
	}

	para.SetRect(0, b.terminalHeight-8, b.terminalWidth, b.terminalHeight-1)
	b.frameView = para
}

func (b *browserState) updateHelpView() {
	help := widgets.NewParagraph()
	help.Border = false
	help.Text = "[q/ESC:](fg:cyan) Quit  [Up/Down:](fg:cyan) Select register  [v:](fg:cyan) Toggle variant"
	help.SetRect(0, b.terminalHeight-1, b.terminalWidth, b.terminalHeight)
	b.helpView = help
}
