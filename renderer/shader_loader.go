package renderer

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// SHADER_MARKER introduces a stage block inside a combined shader file, e.g.
// "#shader vertex" or "#shader fragment".
const SHADER_MARKER = "#shader"

// ShaderProgramSource holds the per-stage source text of one shader file.
type ShaderProgramSource struct {
	VertexSource   string
	FragmentSource string
}

type shaderStage int

const (
	stageNone shaderStage = iota - 1
	stageVertex
	stageFragment
)

// ParseShaderSource splits a combined shader file into its stages. A marker line
// selects the stage for all following lines and is itself never emitted. Lines
// before the first recognised marker belong to no stage and are dropped; a
// marker naming an unknown stage leaves the current stage unchanged.
func ParseShaderSource(r io.Reader) (ShaderProgramSource, error) {
	var sb [2]strings.Builder
	stage := stageNone
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.Contains(line, SHADER_MARKER) {
			if strings.Contains(line, "vertex") {
				stage = stageVertex
			} else if strings.Contains(line, "fragment") {
				stage = stageFragment
			}
			continue
		}
		if stage == stageNone {
			continue
		}
		sb[stage].WriteString(line)
		sb[stage].WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return ShaderProgramSource{}, err
	}
	return ShaderProgramSource{
		VertexSource:   sb[stageVertex].String(),
		FragmentSource: sb[stageFragment].String(),
	}, nil
}

// LoadShaderSource reads and splits the shader file at path.
func LoadShaderSource(path string) (ShaderProgramSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return ShaderProgramSource{}, fmt.Errorf("failed to open shader file '%s': %w", path, err)
	}
	defer f.Close()
	src, err := ParseShaderSource(f)
	if err != nil {
		return ShaderProgramSource{}, fmt.Errorf("failed to read shader file '%s': %w", path, err)
	}
	log.Printf("Read shader file (%s): vertex %d Byte, fragment %d Byte", path, len(src.VertexSource), len(src.FragmentSource))
	return src, nil
}
