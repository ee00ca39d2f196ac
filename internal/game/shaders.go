package game

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Lit vertex shader: world position, normal and light-space position per vertex.
const litVertSrc = `#version 410 core

layout(location = 0) in vec3 aPosition;
layout(location = 1) in vec3 aNormal;
layout(location = 2) in vec3 aColor;

uniform mat4 uModel;
uniform mat4 uView;
uniform mat4 uProjection;
uniform mat4 uLightSpace;
uniform vec3 uLightPosition;
uniform vec3 uViewPosition;

out vec3 vNormal;
out vec3 vColor;
out vec4 vShadowCoord;
out vec3 vLightDir;
out vec3 vViewDir;
out float vLightDistance;

void main() {
    vec4 world = uModel * vec4(aPosition, 1.0);
    vNormal = normalize(mat3(uModel) * aNormal);
    vColor = aColor;
    vShadowCoord = uLightSpace * world;

    vec3 toLight = uLightPosition - world.xyz;
    vLightDir = normalize(toLight);
    vLightDistance = length(toLight);
    vViewDir = normalize(uViewPosition - world.xyz);

    gl_Position = uProjection * uView * world;
}
` + "\x00"

// Lit fragment shader: ambient plus spot cone, attenuation, Phong terms and a
// single-tap shadow test. Kept term for term in step with sim.ShadeFragment.
const litFragSrc = `#version 410 core

in vec3 vNormal;
in vec3 vColor;
in vec4 vShadowCoord;
in vec3 vLightDir;
in vec3 vViewDir;
in float vLightDistance;

uniform vec3 uLightColor;
uniform vec3 uLightDirection;
uniform vec3 uAmbientColor;
uniform sampler2D uShadowMap;
uniform float uCosInner;
uniform float uCosOuter;
uniform vec3 uAttenuation;   // constant, linear, quadratic
uniform vec3 uBoost;         // ambient, diffuse, specular
uniform float uShininess;
uniform vec2 uShadowBias;    // slope, min
uniform float uShadowedLight;

out vec4 FragColor;

float shadowFactor(vec3 n) {
    vec3 proj = vShadowCoord.xyz / vShadowCoord.w;
    proj = proj * 0.5 + 0.5;
    if (proj.z > 1.0) return 0.0;

    float stored = texture(uShadowMap, proj.xy).r;
    float bias = max(uShadowBias.x * (1.0 - dot(n, normalize(uLightDirection))), uShadowBias.y);
    return proj.z - bias > stored ? 1.0 : 0.0;
}

void main() {
    vec3 n = normalize(vNormal);
    vec3 ambient = uAmbientColor * vColor * uBoost.x;

    float theta = dot(vLightDir, normalize(-uLightDirection));
    float eps = uCosInner - uCosOuter;
    float cone = clamp((theta - uCosOuter) / eps, 0.0, 1.0);

    float diff = max(dot(n, vLightDir), 0.0);
    vec3 diffuse = diff * uLightColor * vColor * uBoost.y;

    vec3 reflectDir = reflect(-vLightDir, n);
    float spec = pow(max(dot(vViewDir, reflectDir), 0.0), uShininess);
    vec3 specular = spec * uLightColor * uBoost.z;

    float d = vLightDistance;
    float attenuation = 1.0 / (uAttenuation.x + uAttenuation.y * d + uAttenuation.z * d * d);

    float shadow = shadowFactor(n);
    vec3 result = ambient + (1.0 - shadow * uShadowedLight) * cone * attenuation * (diffuse + specular);
    FragColor = vec4(result, 1.0);
}
` + "\x00"

// Depth-only shader for the shadow pass. Only positions are read.
const shadowVertSrc = `#version 410 core

layout(location = 0) in vec3 aPosition;

uniform mat4 uModel;
uniform mat4 uLightSpace;

void main() {
    gl_Position = uLightSpace * uModel * vec4(aPosition, 1.0);
}
` + "\x00"

const shadowFragSrc = `#version 410 core

void main() {
}
` + "\x00"

// Flat-colour lines for the footprint overlay.
const lineVertSrc = `#version 410 core

layout(location = 0) in vec3 aPosition;

uniform mat4 uViewProjection;

void main() {
    gl_Position = uViewProjection * vec4(aPosition, 1.0);
}
` + "\x00"

const lineFragSrc = `#version 410 core

uniform vec3 uColor;

out vec4 FragColor;

void main() {
    FragColor = vec4(uColor, 1.0);
}
` + "\x00"

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(buf))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile shader: %s", strings.TrimRight(buf, "\x00"))
	}
	return shader, nil
}

func linkProgram(vertSrc, fragSrc string) (uint32, error) {
	vs, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	gl.DetachShader(program, vs)
	gl.DetachShader(program, fs)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(program, logLen, nil, gl.Str(buf))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link program: %s", strings.TrimRight(buf, "\x00"))
	}
	return program, nil
}

// uniform looks up a uniform location by its GLSL name.
func uniform(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}
