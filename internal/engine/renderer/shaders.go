package renderer

const meshVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPosition;
layout (location = 1) in vec3 aNormal;

uniform mat4 uModelView;
uniform mat4 uProjection;
uniform mat3 uNormalMatrix;

out vec3 vEyePos;
out vec3 vNormal;

void main() {
	vec4 eye = uModelView * vec4(aPosition, 1.0);
	vEyePos = eye.xyz;
	vNormal = uNormalMatrix * aNormal;
	gl_Position = uProjection * eye;
}
`

const meshFragmentShader = `
#version 410 core

#define MAX_LIGHTS 3

in vec3 vEyePos;
in vec3 vNormal;

uniform vec3 uLightDir[MAX_LIGHTS];
uniform vec3 uLightDiffuse[MAX_LIGHTS];
uniform vec3 uLightSpecular[MAX_LIGHTS];
uniform int uLightCount;
uniform float uAmbient;

uniform vec4 uDiffuse;
uniform vec4 uSpecular;
uniform float uShininess;
uniform bool uFlat;

out vec4 FragColor;

void main() {
	vec3 n;
	if (uFlat) {
		// Face normal from screen-space derivatives; always faces the eye.
		n = normalize(cross(dFdx(vEyePos), dFdy(vEyePos)));
	} else {
		n = normalize(vNormal);
		if (!gl_FrontFacing) {
			n = -n;
		}
	}

	// Viewer at infinity
	vec3 v = vec3(0.0, 0.0, 1.0);

	vec3 color = vec3(uAmbient);
	for (int i = 0; i < uLightCount; i++) {
		vec3 l = uLightDir[i];
		float ndl = max(dot(n, l), 0.0);
		color += uLightDiffuse[i] * uDiffuse.rgb * ndl;
		if (ndl > 0.0) {
			vec3 h = normalize(l + v);
			color += uLightSpecular[i] * uSpecular.rgb * pow(max(dot(n, h), 0.0), max(uShininess, 1.0));
		}
	}

	FragColor = vec4(color, uDiffuse.a);
}
`

var meshUniforms = []string{
	"uModelView",
	"uProjection",
	"uNormalMatrix",
	"uLightDir",
	"uLightDiffuse",
	"uLightSpecular",
	"uLightCount",
	"uAmbient",
	"uDiffuse",
	"uSpecular",
	"uShininess",
	"uFlat",
}
