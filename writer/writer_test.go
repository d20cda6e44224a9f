package writer_test

import (
	"bytes"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ezrec/acc8/cpu"
	"github.com/ezrec/acc8/writer"
)

var _ = Describe("Writer", func() {
	var (
		prog   *cpu.Program
		output *bytes.Buffer
	)

	BeforeEach(func() {
		source := strings.Join([]string{
			"START: LOAD A,#5",
			"INC A",
			"",
			"JMP START",
		}, "\n")

		var err error
		prog, err = (&cpu.Assembler{}).Parse(strings.NewReader(source))
		Expect(err).NotTo(HaveOccurred())

		output = &bytes.Buffer{}
	})

	It("should dump uppercase hex", func() {
		Expect(writer.Hex(output, []byte{0x09, 0x05, 0x0c, 0x06, 0x00, 0xff})).To(Succeed())
		Expect(output.String()).To(Equal("09 05 0C 06 00 FF\n"))
	})

	It("should dump an empty program", func() {
		Expect(writer.Hex(output, nil)).To(Succeed())
		Expect(output.String()).To(Equal("\n"))
	})

	It("should write addressed hex words", func() {
		Expect(writer.Words(output, prog)).To(Succeed())

		lines := strings.Split(strings.TrimSuffix(output.String(), "\n"), "\n")
		Expect(lines).To(HaveLen(1 + cpu.MEMORY_SIZE/writer.WORDS_PER_LINE))
		Expect(lines[0]).To(Equal(writer.WORDS_HEADER))
		Expect(lines[1]).To(Equal("00: 09 05 0c 06 00 00 00 00 00 00 00 00 00 00 00 00"))
		Expect(lines[2]).To(HavePrefix("10: 00 00"))
		Expect(lines[16]).To(HavePrefix("f0: "))
	})

	It("should refuse a program larger than memory", func() {
		big, err := (&cpu.Assembler{}).Parse(strings.NewReader("RESB 255\nDB #1\nHALT"))
		Expect(err).NotTo(HaveOccurred())

		Expect(writer.Words(output, big)).To(MatchError(cpu.ErrProgramSize))
		Expect(output.Len()).To(BeZero())
	})

	It("should list every source line", func() {
		Expect(writer.Table(output, prog)).To(Succeed())

		text := output.String()
		Expect(text).To(ContainSubstring("START"))
		Expect(text).To(ContainSubstring("LOAD A,#5"))
		Expect(text).To(ContainSubstring("09 05"))
		Expect(text).To(ContainSubstring("INC A"))
		Expect(text).To(ContainSubstring("JMP START"))
		Expect(text).To(ContainSubstring("06 00"))
	})

	It("should dispatch on format", func() {
		for _, format := range writer.Formats {
			output.Reset()
			Expect(writer.Write(output, format, prog)).To(Succeed())
			Expect(output.Len()).NotTo(BeZero())
		}

		output.Reset()
		Expect(writer.Write(output, writer.FORMAT_HEX, prog)).To(Succeed())
		Expect(output.String()).To(Equal("09 05 0C 06 00\n"))

		err := writer.Write(output, writer.Format("elf"), prog)
		Expect(err).To(Equal(writer.ErrFormat("elf")))
	})
})
