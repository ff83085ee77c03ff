// SPDX-License-Identifier: MPL-2.0

package sanity

import (
	"fmt"
	"io"
	"strings"

	"github.com/invowk/psabigen/internal/scalar"
)

const checkMacros = `// Check expected == actual, including expr_str in the error message.
#define CHECK_EQ(expr_str, expected, actual) \
  _Static_assert((expected) == (actual), expr_str " should be " #expected);

// Check sizeof(type) == size, _Alignof(type) == align.
#define CHECK_SIZE_ALIGN(type, size, align) \
  CHECK_EQ("sizeof(" #type ")", size, sizeof(type)); \
  CHECK_EQ("_Alignof(" #type ")", align, _Alignof(type));

#define CHECK_DEFINED_EQ(name, value) \
  CHECK_EQ(#name " (preprocessor define)", value, name);
`

// Generate writes a C translation unit checking the ABI's scalar layout,
// signedness and predefined macros. arch may be nil to skip the ISA checks.
func Generate(w io.Writer, abi scalar.ABI, arch *Arch) error {
	if arch != nil {
		if err := arch.Supports(abi); err != nil {
			return err
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "// RISC-V %s sanity checks    -*- C -*-\n", strings.ToUpper(abi.Name))
	sb.WriteString("// Generated by psabigen. Do not edit.\n\n")
	sb.WriteString("#include <limits.h>\n#include <stddef.h>\n#include <stdint.h>\n#include <wchar.h>\n\n")
	sb.WriteString(checkMacros)

	sb.WriteString("\n// Standard C types: sizes and alignments\n")
	for _, typ := range abi.Types() {
		fmt.Fprintf(&sb, "CHECK_SIZE_ALIGN(%s, %d, %d);\n", typ.Name, typ.Size, typ.Align)
	}
	fmt.Fprintf(&sb, "CHECK_EQ(\"_Alignof(max_align_t)\", %d, _Alignof(max_align_t));\n", scalar.MaxAlign)

	sb.WriteString("\n// Standard C types: signedness\n")
	sb.WriteString("_Static_assert(CHAR_MIN == (char)0 && CHAR_MAX == UCHAR_MAX,\n               \"char should be an unsigned type\");\n")
	sb.WriteString("_Static_assert(WCHAR_MIN < (wchar_t)0, \"wchar_t should be a signed type\");\n")
	sb.WriteString("_Static_assert(WINT_MIN == (wint_t)0, \"wint_t should be an unsigned type\");\n")

	sb.WriteString("\n// ABI-specific preprocessor defines\n")
	writeDefineCheck(&sb, "__ELF__", true)
	writeDefineCheck(&sb, "__riscv", true)
	writeDefineCheck(&sb, "__riscv_float_abi_soft", abi.Float == scalar.FloatSoft)
	writeDefineCheck(&sb, "__riscv_float_abi_single", abi.Float == scalar.FloatSingle)
	writeDefineCheck(&sb, "__riscv_float_abi_double", abi.Float == scalar.FloatDouble)
	writeDefineCheck(&sb, "__riscv_abi_rve", abi.RVE)

	if arch != nil {
		sb.WriteString("\n// Architecture-specific preprocessor defines\n")
		fmt.Fprintf(&sb, "CHECK_DEFINED_EQ(__riscv_xlen, %d);\n", arch.XLEN)
		if arch.FLEN > 0 {
			fmt.Fprintf(&sb, "CHECK_DEFINED_EQ(__riscv_flen, %d);\n", arch.FLEN)
		} else {
			writeDefineCheck(&sb, "__riscv_flen", false)
		}
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("failed to write sanity checks: %w", err)
	}
	return nil
}

func writeDefineCheck(sb *strings.Builder, name string, defined bool) {
	if defined {
		fmt.Fprintf(sb, "#ifndef %s\n_Static_assert(0, \"%s (preprocessor define) is not defined\");\n#endif\n", name, name)
		return
	}
	fmt.Fprintf(sb, "#ifdef %s\n_Static_assert(0, \"%s (preprocessor define) is defined and should not be\");\n#endif\n", name, name)
}
