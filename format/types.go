package format

import (
	"fmt"
	"strings"

	"github.com/arloliu/scoresdb/errs"
)

type (
	GameMode        uint8
	Mods            uint32
	CompressionType uint8
)

const (
	StringFlagEmpty   byte = 0x00 // StringFlagEmpty marks an empty string; no further bytes follow.
	StringFlagPresent byte = 0x0B // StringFlagPresent is followed by a ULEB128 length and the UTF-8 bytes.

	IntDoubleIntTag    byte = 0x08 // IntDoubleIntTag precedes the int32 of an int-double pair.
	IntDoubleDoubleTag byte = 0x0D // IntDoubleDoubleTag precedes the float64 of an int-double pair.
)

const (
	ModeOsu   GameMode = 0x0 // ModeOsu is osu!standard.
	ModeTaiko GameMode = 0x1 // ModeTaiko is osu!taiko.
	ModeCatch GameMode = 0x2 // ModeCatch is osu!catch.
	ModeMania GameMode = 0x3 // ModeMania is osu!mania.
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (m GameMode) String() string {
	switch m {
	case ModeOsu:
		return "osu"
	case ModeTaiko:
		return "taiko"
	case ModeCatch:
		return "catch"
	case ModeMania:
		return "mania"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Extension returns the file extension used for backups compressed with c,
// including the leading dot. CompressionNone has no extension.
func (c CompressionType) Extension() string {
	switch c {
	case CompressionZstd:
		return ".zst"
	case CompressionS2:
		return ".s2"
	case CompressionLZ4:
		return ".lz4"
	default:
		return ""
	}
}

// ParseCompressionType parses a case-insensitive compression name
// ("none", "zstd", "s2", "lz4").
func ParseCompressionType(name string) (CompressionType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "none", "":
		return CompressionNone, nil
	case "zstd":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidCompression, name)
	}
}

// CompressionFromExtension maps a backup file extension back to its compression type.
// Unknown extensions are treated as uncompressed.
func CompressionFromExtension(ext string) CompressionType {
	switch strings.ToLower(ext) {
	case ".zst":
		return CompressionZstd
	case ".s2":
		return CompressionS2
	case ".lz4":
		return CompressionLZ4
	default:
		return CompressionNone
	}
}

// Mod bits as stored in a score's mods field.
const (
	ModNoFail      Mods = 1 << 0
	ModEasy        Mods = 1 << 1
	ModTouchDevice Mods = 1 << 2
	ModHidden      Mods = 1 << 3
	ModHardRock    Mods = 1 << 4
	ModSuddenDeath Mods = 1 << 5
	ModDoubleTime  Mods = 1 << 6
	ModRelax       Mods = 1 << 7
	ModHalfTime    Mods = 1 << 8
	ModNightcore   Mods = 1 << 9 // always set together with ModDoubleTime
	ModFlashlight  Mods = 1 << 10
	ModAutoplay    Mods = 1 << 11
	ModSpunOut     Mods = 1 << 12
	ModAutopilot   Mods = 1 << 13
	ModPerfect     Mods = 1 << 14 // always set together with ModSuddenDeath
	ModFadeIn      Mods = 1 << 20
	ModRandom      Mods = 1 << 21
	ModScoreV2     Mods = 1 << 29
	ModMirror      Mods = 1 << 30
)

var modNames = []struct {
	mod  Mods
	name string
}{
	{ModNoFail, "NF"},
	{ModEasy, "EZ"},
	{ModTouchDevice, "TD"},
	{ModHidden, "HD"},
	{ModHardRock, "HR"},
	{ModPerfect, "PF"},
	{ModSuddenDeath, "SD"},
	{ModNightcore, "NC"},
	{ModDoubleTime, "DT"},
	{ModRelax, "RX"},
	{ModHalfTime, "HT"},
	{ModFlashlight, "FL"},
	{ModAutoplay, "AT"},
	{ModSpunOut, "SO"},
	{ModAutopilot, "AP"},
	{ModFadeIn, "FI"},
	{ModRandom, "RD"},
	{ModScoreV2, "V2"},
	{ModMirror, "MR"},
}

// Has reports whether all bits of mod are set.
func (m Mods) Has(mod Mods) bool {
	return m&mod == mod
}

// String returns the conventional acronym list, e.g. "HDDT". Implied mods are
// folded (NC hides DT, PF hides SD). Zero is "NM"; unknown bits are ignored.
func (m Mods) String() string {
	if m == 0 {
		return "NM"
	}

	var sb strings.Builder
	for _, mn := range modNames {
		if !m.Has(mn.mod) {
			continue
		}
		if mn.mod == ModDoubleTime && m.Has(ModNightcore) {
			continue
		}
		if mn.mod == ModSuddenDeath && m.Has(ModPerfect) {
			continue
		}
		sb.WriteString(mn.name)
	}

	return sb.String()
}
